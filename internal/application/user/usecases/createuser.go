package usecases

import (
	"context"

	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type CreateUserCommand struct {
	ActorID      uint
	FullName     string
	Email        string
	Password     string
	Role         string
	RegionID     *uint
	DepartmentID *uint
}

type CreateUserResult struct {
	UserID uint `json:"user_id"`
}

// CreateUserUseCase registers an account. Admins create users and
// technicians; admin and superadmin accounts are created by the
// superadmin only.
type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "actor_id", cmd.ActorID, "role", cmd.Role)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	role := authorization.UserRole(cmd.Role)
	if !role.IsValid() {
		return nil, errors.NewValidationError("invalid role: " + cmd.Role)
	}
	if role.IsAdmin() && !actor.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("only the superadmin can create admin accounts")
	}

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	if existing, _ := uc.userRepo.GetByEmail(ctx, cmd.Email); existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u, err := user.NewUser(cmd.FullName, cmd.Email, hash, role, cmd.RegionID, cmd.DepartmentID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", role)

	return &CreateUserResult{UserID: u.ID()}, nil
}
