package mappers

import (
	"fmt"
	"time"

	"yordam/internal/domain/user"
	"yordam/internal/infrastructure/persistence/models"
	"yordam/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		FullName:     u.FullName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		RegionID:     u.RegionID(),
		DepartmentID: u.DepartmentID(),
		Language:     u.Language(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role := authorization.UserRole(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("user %d: invalid role %q", model.ID, model.Role)
	}

	return user.ReconstructUser(
		model.ID,
		model.FullName,
		model.Email,
		model.PasswordHash,
		role,
		model.RegionID,
		model.DepartmentID,
		model.Language,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
