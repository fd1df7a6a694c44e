package usecases

import (
	"context"
	"fmt"

	"yordam/internal/application/ticket/dto"
	"yordam/internal/domain/routing"
	"yordam/internal/domain/ticket"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type ListUnassignedQuery struct {
	TechnicianID uint
	Page         int
	PageSize     int
}

type ListUnassignedResult struct {
	Tickets    []*dto.TicketDTO
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListUnassignedUseCase serves the technician pickup queue. Which
// (system, region) slots the technician sees is a routing rule, not a
// visibility-filter rule, so the slots come from the router.
type ListUnassignedUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	router     *routing.Router
	logger     logger.Interface
}

func NewListUnassignedUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	router *routing.Router,
	logger logger.Interface,
) *ListUnassignedUseCase {
	return &ListUnassignedUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		router:     router,
		logger:     logger,
	}
}

func (uc *ListUnassignedUseCase) Execute(ctx context.Context, query ListUnassignedQuery) (*ListUnassignedResult, error) {
	tech, err := uc.userRepo.GetByID(ctx, query.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", query.TechnicianID))
	}
	if !tech.IsTechnician() {
		return nil, errors.NewForbiddenError("only technicians have a pickup queue")
	}

	slots, err := uc.router.UnassignedQueueFor(ctx, tech)
	if err != nil {
		uc.logger.Errorw("failed to resolve queue slots", "technician_id", query.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to resolve the pickup queue")
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	tickets, total, err := uc.ticketRepo.ListUnassigned(ctx, slots, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list unassigned tickets", "technician_id", query.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to list unassigned tickets")
	}

	return &ListUnassignedResult{
		Tickets:    dto.FromTickets(tickets),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
