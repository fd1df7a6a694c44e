package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type RemoveResponsibilityCommand struct {
	ResponsibilityID uint
}

type RemoveResponsibilityUseCase struct {
	respRepo system.ResponsibilityRepository
	logger   logger.Interface
}

func NewRemoveResponsibilityUseCase(respRepo system.ResponsibilityRepository, logger logger.Interface) *RemoveResponsibilityUseCase {
	return &RemoveResponsibilityUseCase{
		respRepo: respRepo,
		logger:   logger,
	}
}

func (uc *RemoveResponsibilityUseCase) Execute(ctx context.Context, cmd RemoveResponsibilityCommand) error {
	resp, err := uc.respRepo.GetByID(ctx, cmd.ResponsibilityID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("responsibility %d not found", cmd.ResponsibilityID))
	}

	if err := uc.respRepo.Delete(ctx, resp.ID()); err != nil {
		uc.logger.Errorw("failed to delete responsibility",
			"responsibility_id", cmd.ResponsibilityID, "error", err)
		return errors.NewInternalError("failed to delete responsibility")
	}

	uc.logger.Infow("responsibility removed",
		"responsibility_id", resp.ID(), "system_id", resp.SystemID(), "user_id", resp.UserID())
	return nil
}
