package usecases

import (
	"context"
	"errors"
	"fmt"

	"yordam/internal/domain/routing"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	apperrors "yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type TakeTicketCommand struct {
	TicketID     uint
	TechnicianID uint
}

type TakeTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type TakeTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	historyRepo ticket.HistoryRepository
	userRepo    user.UserRepository
	router      *routing.Router
	notifier    *TicketNotifier
	txManager   TransactionManager
	logger      logger.Interface
}

func NewTakeTicketUseCase(
	ticketRepo ticket.TicketRepository,
	historyRepo ticket.HistoryRepository,
	userRepo user.UserRepository,
	router *routing.Router,
	notifier *TicketNotifier,
	txManager TransactionManager,
	logger logger.Interface,
) *TakeTicketUseCase {
	return &TakeTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		router:      router,
		notifier:    notifier,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *TakeTicketUseCase) Execute(ctx context.Context, cmd TakeTicketCommand) (*TakeTicketResult, error) {
	uc.logger.Infow("executing take ticket use case",
		"ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	tech, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.TechnicianID))
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := uc.router.CanTake(ctx, tech, t); err != nil {
		switch {
		case errors.Is(err, routing.ErrNoResponsibility), errors.Is(err, routing.ErrRegionMismatch):
			return nil, apperrors.NewForbiddenError(err.Error())
		case errors.Is(err, ticket.ErrAlreadyAssigned):
			return nil, apperrors.NewConflictError(err.Error())
		default:
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := t.Take(cmd.TechnicianID); err != nil {
		if errors.Is(err, ticket.ErrAlreadyAssigned) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		techID := cmd.TechnicianID
		entry, err := ticket.NewHistoryEntry(
			t.ID(), &techID, vo.ActionAssigned, "", fmt.Sprintf("%d", techID), "self-assigned")
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return err
		}

		return uc.notifier.StatusChanged(txCtx, t, []uint{t.CreatorID()})
	})
	if err != nil {
		uc.logger.Errorw("failed to take ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket taken successfully", "ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	return &TakeTicketResult{
		TicketID: t.ID(),
		Status:   string(t.Status()),
	}, nil
}
