package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type DeleteUserCommand struct {
	ActorID uint
	UserID  uint
}

// TicketCounts is the slice of the ticket repository the delete gate
// needs.
type TicketCounts interface {
	CountByCreator(ctx context.Context, creatorID uint) (int64, error)
	CountByAssignee(ctx context.Context, assigneeID uint) (int64, error)
}

// ResponsibilityCleaner removes a user's responsibility rows when the
// account goes away.
type ResponsibilityCleaner interface {
	ListByUser(ctx context.Context, userID uint) ([]*system.Responsibility, error)
	Delete(ctx context.Context, respID uint) error
}

// DeleteUserUseCase removes an account. Accounts referenced by tickets,
// as creator or assignee, are never deleted; block them instead.
type DeleteUserUseCase struct {
	userRepo   user.UserRepository
	ticketRepo TicketCounts
	respRepo   ResponsibilityCleaner
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.UserRepository,
	ticketRepo TicketCounts,
	respRepo ResponsibilityCleaner,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:   userRepo,
		ticketRepo: ticketRepo,
		respRepo:   respRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "actor_id", cmd.ActorID, "user_id", cmd.UserID)

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
		return errors.NewValidationError("cannot delete your own account")
	}

	created, err := uc.ticketRepo.CountByCreator(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count created tickets", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to check user references")
	}
	assigned, err := uc.ticketRepo.CountByAssignee(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count assigned tickets", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to check user references")
	}
	if blocking := created + assigned; blocking > 0 {
		return errors.NewUnresolvedDependencyError("user", blocking)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		resps, err := uc.respRepo.ListByUser(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		for _, resp := range resps {
			if err := uc.respRepo.Delete(txCtx, resp.ID()); err != nil {
				return err
			}
		}
		return uc.userRepo.Delete(txCtx, cmd.UserID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID)
	return nil
}
