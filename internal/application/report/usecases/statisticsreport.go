package usecases

import (
	"context"
	"time"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type StatisticsReportQuery struct {
	Actor *access.AccessContext
	From  *time.Time
	To    *time.Time
}

// StatisticsReport is the pre-aggregated data behind the admin report
// screens. Breakdown keys are plain strings and IDs so the web layer
// can render or export them without touching domain types.
type StatisticsReport struct {
	Total      int64            `json:"total"`
	AvgRating  float64          `json:"avg_rating"`
	ByStatus   map[string]int64 `json:"by_status"`
	BySystem   map[uint]int64   `json:"by_system"`
	ByRegion   map[uint]int64   `json:"by_region"`
	ByPriority map[string]int64 `json:"by_priority"`
	ByRating   map[int]int64    `json:"by_rating"`
}

// StatisticsReportUseCase aggregates under the actor's visibility
// filter: a region admin's report only ever counts the tickets that
// admin could open.
type StatisticsReportUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewStatisticsReportUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *StatisticsReportUseCase {
	return &StatisticsReportUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *StatisticsReportUseCase) Execute(ctx context.Context, query StatisticsReportQuery) (*StatisticsReport, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("reports are available to admins only")
	}

	filter := ticket.TicketFilter{
		Access:      query.Actor,
		CreatedFrom: query.From,
		CreatedTo:   query.To,
	}

	report := &StatisticsReport{}

	total, err := uc.ticketRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count tickets for report", "error", err)
		return nil, errors.NewInternalError("failed to build statistics report")
	}
	report.Total = total

	avg, err := uc.ticketRepo.AverageRating(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}
	report.AvgRating = avg

	byStatus, err := uc.ticketRepo.CountByStatus(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}
	report.ByStatus = make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		report.ByStatus[status.String()] = count
	}

	report.BySystem, err = uc.ticketRepo.CountBySystem(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}

	report.ByRegion, err = uc.ticketRepo.CountByRegion(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}

	byPriority, err := uc.ticketRepo.CountByPriority(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}
	report.ByPriority = make(map[string]int64, len(byPriority))
	for priority, count := range byPriority {
		report.ByPriority[priority.String()] = count
	}

	report.ByRating, err = uc.ticketRepo.CountByRating(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError("failed to build statistics report")
	}

	return report, nil
}
