package usecases

import (
	"context"
	"time"

	"yordam/internal/domain/system"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ListSystemsQuery struct {
	ActiveOnly bool
}

type SystemDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListSystemsResult struct {
	Systems []*SystemDTO
}

type ListSystemsUseCase struct {
	systemRepo system.SystemRepository
	logger     logger.Interface
}

func NewListSystemsUseCase(systemRepo system.SystemRepository, logger logger.Interface) *ListSystemsUseCase {
	return &ListSystemsUseCase{
		systemRepo: systemRepo,
		logger:     logger,
	}
}

func (uc *ListSystemsUseCase) Execute(ctx context.Context, query ListSystemsQuery) (*ListSystemsResult, error) {
	systems, err := uc.systemRepo.List(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list systems", "error", err)
		return nil, errors.NewInternalError("failed to list systems")
	}

	dtos := make([]*SystemDTO, 0, len(systems))
	for _, s := range systems {
		dtos = append(dtos, &SystemDTO{
			ID:          s.ID(),
			Name:        s.Name(),
			Description: s.Description(),
			IsActive:    s.IsActive(),
			CreatedAt:   s.CreatedAt(),
		})
	}

	return &ListSystemsResult{Systems: dtos}, nil
}
