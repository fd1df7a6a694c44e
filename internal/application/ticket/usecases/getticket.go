package usecases

import (
	"context"
	"fmt"

	"yordam/internal/application/ticket/dto"
	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    *access.AccessContext
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	historyRepo ticket.HistoryRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	historyRepo ticket.HistoryRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	if !query.Actor.CanSeeTicket(viewOf(t)) {
		return nil, errors.NewScopeDeniedError("ticket is outside your scope")
	}

	messages, err := uc.messageRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket messages", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket messages")
	}

	history, err := uc.historyRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket history", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load ticket history")
	}

	return &dto.TicketDetailDTO{
		Ticket:   dto.FromTicket(t),
		Messages: dto.FromMessages(messages),
		History:  dto.FromHistory(history),
	}, nil
}
