package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ChangeUserRoleCommand struct {
	ActorID uint
	UserID  uint
	NewRole string
}

// ChangeUserRoleUseCase moves an account between roles. Granting or
// revoking an admin role is superadmin-only; so is touching an account
// that already holds one.
type ChangeUserRoleUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewChangeUserRoleUseCase(userRepo user.UserRepository, logger logger.Interface) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, cmd ChangeUserRoleCommand) error {
	uc.logger.Infow("executing change user role use case",
		"actor_id", cmd.ActorID, "user_id", cmd.UserID, "new_role", cmd.NewRole)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return err
	}

	newRole := authorization.UserRole(cmd.NewRole)
	if !newRole.IsValid() {
		return errors.NewValidationError("invalid role: " + cmd.NewRole)
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := canManage(actor, target); err != nil {
		return err
	}
	if newRole.IsAdmin() && !actor.IsSuperAdmin() {
		return errors.NewForbiddenError("only the superadmin can grant admin roles")
	}
	if target.ID() == actor.ID() {
		return errors.NewValidationError("cannot change your own role")
	}

	if err := target.ChangeRole(newRole); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to change user role")
	}

	uc.logger.Infow("user role changed", "user_id", cmd.UserID, "new_role", newRole)
	return nil
}
