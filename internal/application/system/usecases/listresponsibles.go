package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ListResponsiblesQuery struct {
	SystemID uint
	RegionID uint
}

type ResponsibleDTO struct {
	UserID       uint   `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RepublicWide bool   `json:"republic_wide"`
	IsDefault    bool   `json:"is_default"`
}

type ListResponsiblesResult struct {
	Technician *ResponsibleDTO   `json:"technician"`
	Admins     []*ResponsibleDTO `json:"admins"`
}

// ListResponsiblesUseCase answers "who handles this system in my
// region": the region technician with republic-default fallback, and
// the admins whose scope covers the region.
type ListResponsiblesUseCase struct {
	respRepo system.ResponsibilityRepository
	userRepo user.UserRepository
	logger   logger.Interface
}

func NewListResponsiblesUseCase(
	respRepo system.ResponsibilityRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListResponsiblesUseCase {
	return &ListResponsiblesUseCase{
		respRepo: respRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListResponsiblesUseCase) Execute(ctx context.Context, query ListResponsiblesQuery) (*ListResponsiblesResult, error) {
	result := &ListResponsiblesResult{}

	tech, err := uc.respRepo.FindTechnicianForRegion(ctx, query.SystemID, query.RegionID)
	if err != nil {
		uc.logger.Errorw("failed to find region technician", "system_id", query.SystemID, "error", err)
		return nil, errors.NewInternalError("failed to resolve responsibles")
	}
	if tech == nil {
		tech, err = uc.respRepo.FindDefaultTechnician(ctx, query.SystemID)
		if err != nil {
			return nil, errors.NewInternalError("failed to resolve responsibles")
		}
	}
	if tech != nil {
		dto, err := uc.toDTO(ctx, tech)
		if err != nil {
			return nil, err
		}
		result.Technician = dto
	}

	admins, err := uc.respRepo.ListAdminsForSystem(ctx, query.SystemID)
	if err != nil {
		uc.logger.Errorw("failed to list system admins", "system_id", query.SystemID, "error", err)
		return nil, errors.NewInternalError("failed to resolve responsibles")
	}
	for _, row := range admins {
		if !row.Scope().Covers(query.RegionID) {
			continue
		}
		dto, err := uc.toDTO(ctx, row)
		if err != nil {
			return nil, err
		}
		result.Admins = append(result.Admins, dto)
	}

	return result, nil
}

func (uc *ListResponsiblesUseCase) toDTO(ctx context.Context, resp *system.Responsibility) (*ResponsibleDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, resp.UserID())
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("responsible user %d not found", resp.UserID()))
	}
	return &ResponsibleDTO{
		UserID:       u.ID(),
		FullName:     u.FullName(),
		Email:        u.Email(),
		Role:         string(resp.Role()),
		RepublicWide: resp.Scope().IsRepublicWide(),
		IsDefault:    resp.IsDefault(),
	}, nil
}
