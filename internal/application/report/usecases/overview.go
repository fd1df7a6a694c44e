package usecases

import (
	"context"
	"sort"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/biztime"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type OverviewQuery struct {
	Actor *access.AccessContext
}

type SystemCount struct {
	SystemID uint  `json:"system_id"`
	Count    int64 `json:"count"`
}

// Overview is the superadmin landing-page aggregate: user totals,
// ticket inflow over three windows, the status breakdown, republic-wide
// health counters and the busiest systems and technicians.
type Overview struct {
	UsersByRole    map[string]int64            `json:"users_by_role"`
	ActiveUsers    int64                       `json:"active_users"`
	BlockedUsers   int64                       `json:"blocked_users"`
	TicketsToday   int64                       `json:"tickets_today"`
	TicketsWeek    int64                       `json:"tickets_week"`
	TicketsMonth   int64                       `json:"tickets_month"`
	ByStatus       map[string]int64            `json:"by_status"`
	ByRegion       map[uint]int64              `json:"by_region"`
	AvgRating      float64                     `json:"avg_rating"`
	Unassigned     int64                       `json:"unassigned"`
	Pending        int64                       `json:"pending"`
	Reopened       int64                       `json:"reopened"`
	TopSystems     []SystemCount               `json:"top_systems"`
	TopTechnicians []*TechnicianPerformanceRow `json:"top_technicians"`
}

const overviewTopN = 5

type OverviewUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewOverviewUseCase(ticketRepo ticket.TicketRepository, userRepo user.UserRepository, logger logger.Interface) *OverviewUseCase {
	return &OverviewUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *OverviewUseCase) Execute(ctx context.Context, query OverviewQuery) (*Overview, error) {
	if !query.Actor.Role.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("the overview is available to the superadmin only")
	}

	overview := &Overview{}

	roleCounts, err := uc.userRepo.CountByRole(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count users by role", "error", err)
		return nil, errors.NewInternalError("failed to build overview")
	}
	overview.UsersByRole = make(map[string]int64, len(roleCounts))
	for role, count := range roleCounts {
		overview.UsersByRole[role.String()] = count
	}

	active := true
	if _, total, err := uc.userRepo.List(ctx, user.UserFilter{Active: &active, PageSize: 1}); err == nil {
		overview.ActiveUsers = total
	}
	blocked := false
	if _, total, err := uc.userRepo.List(ctx, user.UserFilter{Active: &blocked, PageSize: 1}); err == nil {
		overview.BlockedUsers = total
	}

	unrestricted := ticket.TicketFilter{Access: query.Actor}

	now := biztime.NowUTC()
	for _, window := range []struct {
		target *int64
		days   int
	}{
		{&overview.TicketsToday, 0},
		{&overview.TicketsWeek, 6},
		{&overview.TicketsMonth, 29},
	} {
		from := biztime.StartOfDayUTC(now.AddDate(0, 0, -window.days))
		filter := unrestricted
		filter.CreatedFrom = &from
		count, err := uc.ticketRepo.Count(ctx, filter)
		if err != nil {
			return nil, errors.NewInternalError("failed to build overview")
		}
		*window.target = count
	}

	byStatus, err := uc.ticketRepo.CountByStatus(ctx, unrestricted)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}
	overview.ByStatus = make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		overview.ByStatus[status.String()] = count
	}
	overview.Pending = byStatus[vo.StatusPendingApproval]
	overview.Reopened = byStatus[vo.StatusReopened]

	overview.ByRegion, err = uc.ticketRepo.CountByRegion(ctx, unrestricted)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}

	overview.AvgRating, err = uc.ticketRepo.AverageRating(ctx, unrestricted)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}

	unassigned := true
	unassignedFilter := unrestricted
	unassignedFilter.Unassigned = &unassigned
	overview.Unassigned, err = uc.ticketRepo.Count(ctx, unassignedFilter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}

	bySystem, err := uc.ticketRepo.CountBySystem(ctx, unrestricted)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}
	for systemID, count := range bySystem {
		overview.TopSystems = append(overview.TopSystems, SystemCount{SystemID: systemID, Count: count})
	}
	sort.Slice(overview.TopSystems, func(i, j int) bool {
		if overview.TopSystems[i].Count != overview.TopSystems[j].Count {
			return overview.TopSystems[i].Count > overview.TopSystems[j].Count
		}
		return overview.TopSystems[i].SystemID < overview.TopSystems[j].SystemID
	})
	if len(overview.TopSystems) > overviewTopN {
		overview.TopSystems = overview.TopSystems[:overviewTopN]
	}

	stats, err := uc.ticketRepo.TechnicianPerformance(ctx, unrestricted)
	if err != nil {
		return nil, errors.NewInternalError("failed to build overview")
	}
	for _, s := range stats {
		row := &TechnicianPerformanceRow{
			TechnicianID:  s.TechnicianID,
			ResolvedCount: s.ResolvedCount,
			RatedCount:    s.RatedCount,
			AvgRating:     s.AvgRating,
		}
		if u, err := uc.userRepo.GetByID(ctx, s.TechnicianID); err == nil {
			row.FullName = u.FullName()
		}
		overview.TopTechnicians = append(overview.TopTechnicians, row)
	}
	sort.SliceStable(overview.TopTechnicians, func(i, j int) bool {
		return overview.TopTechnicians[i].ResolvedCount > overview.TopTechnicians[j].ResolvedCount
	})
	if len(overview.TopTechnicians) > overviewTopN {
		overview.TopTechnicians = overview.TopTechnicians[:overviewTopN]
	}

	return overview, nil
}
