package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ToggleUserActiveCommand struct {
	ActorID uint
	UserID  uint
	Active  bool
}

// ToggleUserActiveUseCase blocks or unblocks an account. A blocked
// account keeps its tickets and history; it just cannot log in.
type ToggleUserActiveUseCase struct {
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewToggleUserActiveUseCase(userRepo user.UserRepository, logger logger.Interface) *ToggleUserActiveUseCase {
	return &ToggleUserActiveUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ToggleUserActiveUseCase) Execute(ctx context.Context, cmd ToggleUserActiveCommand) error {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return err
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := canManage(actor, target); err != nil {
		return err
	}
	if target.ID() == actor.ID() {
		return errors.NewValidationError("cannot block your own account")
	}

	if cmd.Active {
		target.Activate()
	} else {
		target.Deactivate()
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to toggle user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user active flag changed", "user_id", cmd.UserID, "active", cmd.Active)
	return nil
}
