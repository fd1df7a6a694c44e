package user

import (
	"context"

	"yordam/internal/shared/authorization"
)

type UserFilter struct {
	Role     *authorization.UserRole
	RegionID *uint
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	CountByRole(ctx context.Context) (map[authorization.UserRole]int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
}
