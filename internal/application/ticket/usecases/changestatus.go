package usecases

import (
	"context"
	"errors"
	"fmt"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	apperrors "yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Actor     *access.AccessContext
}

type ChangeStatusResult struct {
	TicketID  uint   `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

type ChangeStatusUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	notifier    *TicketNotifier
	txManager   TransactionManager
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	notifier *TicketNotifier,
	txManager TransactionManager,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "actor_id", cmd.Actor.UserID)

	newStatus := vo.TicketStatus(cmd.NewStatus)
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", cmd.NewStatus))
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if !uc.canChange(cmd.Actor, t) {
		return nil, apperrors.NewForbiddenError("not allowed to change this ticket's status")
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(newStatus); err != nil {
		if errors.Is(err, ticket.ErrInvalidTransition) {
			return nil, apperrors.NewInvalidTransitionError(string(oldStatus), cmd.NewStatus)
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		actorID := cmd.Actor.UserID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &actorID, vo.ActionStatusChanged, string(oldStatus), string(t.Status()), "")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		if t.Status() == vo.StatusPendingApproval {
			return uc.notifier.RatingRequest(txCtx, t)
		}
		return uc.notifier.StatusChanged(txCtx, t, []uint{t.CreatorID()})
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed successfully",
		"ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: string(oldStatus),
		NewStatus: string(t.Status()),
	}, nil
}

// canChange allows the current assignee and any admin whose scope covers
// the ticket. Creators drive their side of the lifecycle through the
// rate and reopen operations, not here.
func (uc *ChangeStatusUseCase) canChange(actor *access.AccessContext, t *ticket.Ticket) bool {
	if actor.Role.IsAdmin() || actor.Role.IsSuperAdmin() {
		return actor.CanSeeTicket(viewOf(t))
	}
	return t.AssigneeID() != nil && *t.AssigneeID() == actor.UserID
}
