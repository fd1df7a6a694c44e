package usecases

import (
	"context"
	"errors"
	"fmt"

	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	apperrors "yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type RateTicketCommand struct {
	TicketID uint
	UserID   uint
	Rating   int
	Comment  string
}

type RateTicketResult struct {
	TicketID  uint   `json:"ticket_id"`
	Rating    int    `json:"rating"`
	NewStatus string `json:"new_status"`
}

// RateTicketUseCase closes the approval loop: the creator scores the
// work on a pending_approval ticket and the score decides whether it
// resolves or bounces back to the technician.
type RateTicketUseCase struct {
	ticketRepo      ticket.TicketRepository
	historyRepo     ticket.HistoryRepository
	notifier        *TicketNotifier
	txManager       TransactionManager
	ratingThreshold int
	logger          logger.Interface
}

func NewRateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	notifier *TicketNotifier,
	txManager TransactionManager,
	ratingThreshold int,
	logger logger.Interface,
) *RateTicketUseCase {
	return &RateTicketUseCase{
		ticketRepo:      ticketRepo,
		historyRepo:     historyRepo,
		notifier:        notifier,
		txManager:       txManager,
		ratingThreshold: ratingThreshold,
		logger:          logger,
	}
}

func (uc *RateTicketUseCase) Execute(ctx context.Context, cmd RateTicketCommand) (*RateTicketResult, error) {
	uc.logger.Infow("executing rate ticket use case",
		"ticket_id", cmd.TicketID, "user_id", cmd.UserID, "rating", cmd.Rating)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if t.CreatorID() != cmd.UserID {
		return nil, apperrors.NewForbiddenError("only the ticket creator may rate it")
	}

	newStatus, err := t.Rate(cmd.Rating, cmd.Comment, uc.ratingThreshold)
	if err != nil {
		if errors.Is(err, ticket.ErrNotPendingApproval) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		userID := cmd.UserID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &userID, vo.ActionRated, "", fmt.Sprintf("%d", cmd.Rating), cmd.Comment)
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
		uc.logger.Errorw("failed to rate ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket rated successfully",
		"ticket_id", cmd.TicketID, "rating", cmd.Rating, "new_status", newStatus)

	return &RateTicketResult{
		TicketID:  t.ID(),
		Rating:    cmd.Rating,
		NewStatus: string(newStatus),
	}, nil
}
