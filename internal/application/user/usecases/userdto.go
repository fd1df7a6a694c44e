package usecases

import (
	"time"

	"yordam/internal/domain/user"
)

type UserDTO struct {
	ID           uint      `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	RegionID     *uint     `json:"region_id,omitempty"`
	DepartmentID *uint     `json:"department_id,omitempty"`
	Language     string    `json:"language"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func toUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:           u.ID(),
		FullName:     u.FullName(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		RegionID:     u.RegionID(),
		DepartmentID: u.DepartmentID(),
		Language:     u.Language(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}
