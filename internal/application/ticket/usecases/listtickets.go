package usecases

import (
	"context"
	"time"

	"yordam/internal/application/ticket/dto"
	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status      string
	Priority    string
	SystemID    *uint
	RegionID    *uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
	Actor       *access.AccessContext
}

type ListTicketsResult struct {
	Tickets    []*dto.TicketDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListTicketsUseCase lists whatever slice of the ticket table the actor
// may see. The role dispatch lives in the repository's access filter;
// this use case only shapes the query.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		SystemID:    query.SystemID,
		RegionID:    query.RegionID,
		CreatedFrom: query.CreatedFrom,
		CreatedTo:   query.CreatedTo,
		Access:      query.Actor,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
	}

	if query.Status != "" {
		status := vo.TicketStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return nil, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	filter.Page = p.Page
	filter.PageSize = p.PageSize

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:    dto.FromTickets(tickets),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
