package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type ResponsibilityDTO struct {
	SystemID     uint   `json:"system_id"`
	SystemName   string `json:"system_name"`
	Role         string `json:"role"`
	RepublicWide bool   `json:"republic_wide"`
	RegionID     *uint  `json:"region_id,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

type GetProfileResult struct {
	User             *UserDTO
	Responsibilities []*ResponsibilityDTO
}

type GetProfileUseCase struct {
	userRepo   user.UserRepository
	respRepo   system.ResponsibilityRepository
	systemRepo system.SystemRepository
	logger     logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.UserRepository,
	respRepo system.ResponsibilityRepository,
	systemRepo system.SystemRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:   userRepo,
		respRepo:   respRepo,
		systemRepo: systemRepo,
		logger:     logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", query.UserID))
	}

	result := &GetProfileResult{User: toUserDTO(u)}

	resps, err := uc.respRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list responsibilities", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load profile")
	}
	for _, resp := range resps {
		dto := &ResponsibilityDTO{
			SystemID:     resp.SystemID(),
			Role:         string(resp.Role()),
			RepublicWide: resp.Scope().IsRepublicWide(),
			RegionID:     resp.Scope().RegionIDPtr(),
			IsDefault:    resp.IsDefault(),
		}
		if sys, err := uc.systemRepo.GetByID(ctx, resp.SystemID()); err == nil {
			dto.SystemName = sys.Name()
		}
		result.Responsibilities = append(result.Responsibilities, dto)
	}

	return result, nil
}
