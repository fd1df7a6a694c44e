package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type DeleteSystemCommand struct {
	SystemID uint
}

// TransactionManager runs a function inside one database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TicketCounter is the slice of the ticket repository the delete gate
// needs.
type TicketCounter interface {
	CountBySystemID(ctx context.Context, systemID uint) (int64, error)
}

// DeleteSystemUseCase removes a system and its responsibility rows.
// Systems with tickets on record are never deleted; history must stay
// resolvable.
type DeleteSystemUseCase struct {
	systemRepo system.SystemRepository
	respRepo   system.ResponsibilityRepository
	ticketRepo TicketCounter
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteSystemUseCase(
	systemRepo system.SystemRepository,
	respRepo system.ResponsibilityRepository,
	ticketRepo TicketCounter,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteSystemUseCase {
	return &DeleteSystemUseCase{
		systemRepo: systemRepo,
		respRepo:   respRepo,
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteSystemUseCase) Execute(ctx context.Context, cmd DeleteSystemCommand) error {
	uc.logger.Infow("executing delete system use case", "system_id", cmd.SystemID)

	if _, err := uc.systemRepo.GetByID(ctx, cmd.SystemID); err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("system %d not found", cmd.SystemID))
	}

	blocking, err := uc.ticketRepo.CountBySystemID(ctx, cmd.SystemID)
	if err != nil {
		uc.logger.Errorw("failed to count blocking tickets", "system_id", cmd.SystemID, "error", err)
		return errors.NewInternalError("failed to check system references")
	}
	if blocking > 0 {
		return errors.NewUnresolvedDependencyError("system", blocking)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		resps, err := uc.respRepo.ListBySystem(txCtx, cmd.SystemID)
		if err != nil {
			return err
		}
		for _, resp := range resps {
			if err := uc.respRepo.Delete(txCtx, resp.ID()); err != nil {
				return err
			}
		}
		return uc.systemRepo.Delete(txCtx, cmd.SystemID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete system", "system_id", cmd.SystemID, "error", err)
		return errors.NewInternalError("failed to delete system")
	}

	uc.logger.Infow("system deleted successfully", "system_id", cmd.SystemID)
	return nil
}
