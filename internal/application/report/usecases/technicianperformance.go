package usecases

import (
	"context"
	"sort"
	"time"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type TechnicianPerformanceQuery struct {
	Actor *access.AccessContext
	From  *time.Time
	To    *time.Time
}

type TechnicianPerformanceRow struct {
	TechnicianID  uint    `json:"technician_id"`
	FullName      string  `json:"full_name"`
	ResolvedCount int64   `json:"resolved_count"`
	RatedCount    int64   `json:"rated_count"`
	AvgRating     float64 `json:"avg_rating"`
}

type TechnicianPerformanceResult struct {
	Rows []*TechnicianPerformanceRow `json:"rows"`
}

// TechnicianPerformanceUseCase ranks technicians by resolved tickets
// under the actor's visibility filter. Rows come back ordered by
// resolved count, ties broken by average rating.
type TechnicianPerformanceUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewTechnicianPerformanceUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *TechnicianPerformanceUseCase {
	return &TechnicianPerformanceUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *TechnicianPerformanceUseCase) Execute(ctx context.Context, query TechnicianPerformanceQuery) (*TechnicianPerformanceResult, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("reports are available to admins only")
	}

	filter := ticket.TicketFilter{
		Access:      query.Actor,
		CreatedFrom: query.From,
		CreatedTo:   query.To,
	}

	stats, err := uc.ticketRepo.TechnicianPerformance(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to compute technician performance", "error", err)
		return nil, errors.NewInternalError("failed to build performance report")
	}

	rows := make([]*TechnicianPerformanceRow, 0, len(stats))
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
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ResolvedCount != rows[j].ResolvedCount {
			return rows[i].ResolvedCount > rows[j].ResolvedCount
		}
		return rows[i].AvgRating > rows[j].AvgRating
	})

	return &TechnicianPerformanceResult{Rows: rows}, nil
}
