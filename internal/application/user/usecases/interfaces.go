package usecases

import (
	"context"

	"yordam/internal/infrastructure/auth"
	"yordam/internal/shared/authorization"
)

// PasswordHasher hides the bcrypt details from the use cases.
// Satisfied by auth.BcryptPasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenService issues and verifies JWT pairs. Satisfied by
// auth.JWTService.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
	Verify(token string) (*auth.Claims, error)
}

// TransactionManager runs a function inside one database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
}

type ChangeUserRoleExecutor interface {
	Execute(ctx context.Context, cmd ChangeUserRoleCommand) error
}

type ToggleUserActiveExecutor interface {
	Execute(ctx context.Context, cmd ToggleUserActiveCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}
