package usecases

import (
	"context"

	"yordam/internal/domain/region"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ListRegionsQuery struct {
	ActiveOnly bool
}

type RegionDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

type ListRegionsResult struct {
	Regions []*RegionDTO
}

type ListRegionsUseCase struct {
	regionRepo region.RegionRepository
	logger     logger.Interface
}

func NewListRegionsUseCase(regionRepo region.RegionRepository, logger logger.Interface) *ListRegionsUseCase {
	return &ListRegionsUseCase{
		regionRepo: regionRepo,
		logger:     logger,
	}
}

func (uc *ListRegionsUseCase) Execute(ctx context.Context, query ListRegionsQuery) (*ListRegionsResult, error) {
	regions, err := uc.regionRepo.List(ctx, query.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list regions", "error", err)
		return nil, errors.NewInternalError("failed to list regions")
	}

	dtos := make([]*RegionDTO, 0, len(regions))
	for _, r := range regions {
		dtos = append(dtos, &RegionDTO{
			ID:       r.ID(),
			Name:     r.Name(),
			Code:     r.Code(),
			IsActive: r.IsActive(),
		})
	}

	return &ListRegionsResult{Regions: dtos}, nil
}
