package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/biztime"
	apperrors "yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ReopenTicketCommand struct {
	TicketID uint
	UserID   uint
	Reason   string
}

type ReopenTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type ReopenTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	historyRepo  ticket.HistoryRepository
	notifier     *TicketNotifier
	txManager    TransactionManager
	reopenWindow time.Duration
	logger       logger.Interface
}

func NewReopenTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	notifier *TicketNotifier,
	txManager TransactionManager,
	reopenWindow time.Duration,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo:   ticketRepo,
		historyRepo:  historyRepo,
		notifier:     notifier,
		txManager:    txManager,
		reopenWindow: reopenWindow,
		logger:       logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*ReopenTicketResult, error) {
	uc.logger.Infow("executing reopen ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if t.CreatorID() != cmd.UserID {
		return nil, apperrors.NewForbiddenError("only the ticket creator may reopen it")
	}

	if err := t.Reopen(biztime.NowUTC(), uc.reopenWindow); err != nil {
		if errors.Is(err, ticket.ErrReopenWindowExpired) {
			return nil, apperrors.NewReopenWindowExpiredError(int(uc.reopenWindow / (24 * time.Hour)))
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		userID := cmd.UserID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &userID, vo.ActionReopened, string(vo.StatusResolved), string(t.Status()), cmd.Reason)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		if t.AssigneeID() != nil {
			return uc.notifier.StatusChanged(txCtx, t, []uint{*t.AssigneeID()})
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to reopen ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket reopened successfully", "ticket_id", cmd.TicketID)

	return &ReopenTicketResult{
		TicketID: t.ID(),
		Status:   string(t.Status()),
	}, nil
}
