package usecases

import (
	"context"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/shared/biztime"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type DashboardQuery struct {
	Actor *access.AccessContext
}

// DashboardStats is the small per-role counter strip. Users see their
// own tickets, technicians their assigned queue; the visibility filter
// does the narrowing.
type DashboardStats struct {
	Today         int64 `json:"today"`
	New           int64 `json:"new"`
	InProgress    int64 `json:"in_progress"`
	Pending       int64 `json:"pending"`
	Resolved      int64 `json:"resolved"`
	ResolvedToday int64 `json:"resolved_today"`
	Rejected      int64 `json:"rejected"`
}

type DashboardUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDashboardUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, query DashboardQuery) (*DashboardStats, error) {
	scoped := ticket.TicketFilter{Access: query.Actor}
	stats := &DashboardStats{}

	byStatus, err := uc.ticketRepo.CountByStatus(ctx, scoped)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}
	stats.New = byStatus[vo.StatusNew]
	stats.InProgress = byStatus[vo.StatusInProgress]
	stats.Pending = byStatus[vo.StatusPendingApproval]
	stats.Resolved = byStatus[vo.StatusResolved]
	stats.Rejected = byStatus[vo.StatusRejected]

	startOfDay := biztime.StartOfDayUTC(biztime.NowUTC())

	todayFilter := scoped
	todayFilter.CreatedFrom = &startOfDay
	stats.Today, err = uc.ticketRepo.Count(ctx, todayFilter)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute dashboard stats")
	}

	if query.Actor.Role.IsTechnician() {
		resolved := vo.StatusResolved
		resolvedToday := scoped
		resolvedToday.Status = &resolved
		resolvedToday.CreatedFrom = &startOfDay
		stats.ResolvedToday, err = uc.ticketRepo.Count(ctx, resolvedToday)
		if err != nil {
			return nil, errors.NewInternalError("failed to compute dashboard stats")
		}
	}

	return stats, nil
}
