package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/access"
	"yordam/internal/domain/routing"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type QuickStatsQuery struct {
	Actor *access.AccessContext
}

// QuickStatsUseCase computes the dashboard counters. The counters are
// deliberately asymmetric: totals, in_progress, resolved and avg_rating
// run through the actor's visibility filter, while the unassigned
// counter for technicians runs through the responsibility-based queue
// slots, so a technician sees pickup candidates in the count even though
// the visibility filter would hide those same tickets from their list.
type QuickStatsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.UserRepository
	router     *routing.Router
	logger     logger.Interface
}

func NewQuickStatsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.UserRepository,
	router *routing.Router,
	logger logger.Interface,
) *QuickStatsUseCase {
	return &QuickStatsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		router:     router,
		logger:     logger,
	}
}

func (uc *QuickStatsUseCase) Execute(ctx context.Context, query QuickStatsQuery) (*ticket.QuickStats, error) {
	scoped := ticket.TicketFilter{Access: query.Actor}

	stats := &ticket.QuickStats{}

	total, err := uc.ticketRepo.Count(ctx, scoped)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, errors.NewInternalError("failed to compute quick stats")
	}
	stats.Total = total

	for status, target := range map[vo.TicketStatus]*int64{
		vo.StatusInProgress: &stats.InProgress,
		vo.StatusResolved:   &stats.Resolved,
	} {
		s := status
		filter := scoped
		filter.Status = &s
		count, err := uc.ticketRepo.Count(ctx, filter)
		if err != nil {
			return nil, errors.NewInternalError("failed to compute quick stats")
		}
		*target = count
	}

	avg, err := uc.ticketRepo.AverageRating(ctx, scoped)
	if err != nil {
		return nil, errors.NewInternalError("failed to compute quick stats")
	}
	stats.AvgRating = avg

	unassigned, err := uc.countUnassigned(ctx, query.Actor)
	if err != nil {
		return nil, err
	}
	stats.Unassigned = unassigned

	return stats, nil
}

func (uc *QuickStatsUseCase) countUnassigned(ctx context.Context, actor *access.AccessContext) (int64, error) {
	if actor.Role.IsTechnician() {
		tech, err := uc.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			return 0, errors.NewNotFoundError(fmt.Sprintf("user %d not found", actor.UserID))
		}
		slots, err := uc.router.UnassignedQueueFor(ctx, tech)
		if err != nil {
			return 0, errors.NewInternalError("failed to resolve the pickup queue")
		}
		return uc.ticketRepo.CountUnassigned(ctx, slots)
	}

	unassigned := true
	filter := ticket.TicketFilter{Access: actor, Unassigned: &unassigned}
	return uc.ticketRepo.Count(ctx, filter)
}
