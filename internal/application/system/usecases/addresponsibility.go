package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type AddResponsibilityCommand struct {
	SystemID  uint
	UserID    uint
	RegionID  *uint
	Role      string
	IsDefault bool
}

type AddResponsibilityResult struct {
	ResponsibilityID uint `json:"responsibility_id"`
}

// AddResponsibilityUseCase binds a user to a system as admin or
// technician, region-bound or republic-wide. One technician per
// (system, region) slot and one republic-wide default per system; a
// default row must be republic-wide.
type AddResponsibilityUseCase struct {
	systemRepo system.SystemRepository
	respRepo   system.ResponsibilityRepository
	userRepo   user.UserRepository
	logger     logger.Interface
}

func NewAddResponsibilityUseCase(
	systemRepo system.SystemRepository,
	respRepo system.ResponsibilityRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *AddResponsibilityUseCase {
	return &AddResponsibilityUseCase{
		systemRepo: systemRepo,
		respRepo:   respRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AddResponsibilityUseCase) Execute(ctx context.Context, cmd AddResponsibilityCommand) (*AddResponsibilityResult, error) {
	uc.logger.Infow("executing add responsibility use case",
		"system_id", cmd.SystemID, "user_id", cmd.UserID, "role", cmd.Role)

	role, err := system.NewSystemRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.systemRepo.GetByID(ctx, cmd.SystemID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("system %d not found", cmd.SystemID))
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}
	if !u.IsActive() {
		return nil, errors.NewValidationError("user is deactivated")
	}

	scope := system.RegionScopeFromPtr(cmd.RegionID)

	if cmd.IsDefault && !scope.IsRepublicWide() {
		return nil, errors.NewValidationError("default responsibility must be republic-wide")
	}

	exists, err := uc.respRepo.Exists(ctx, cmd.SystemID, cmd.UserID, scope)
	if err != nil {
		uc.logger.Errorw("failed to check responsibility uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to check responsibility uniqueness")
	}
	if exists {
		return nil, errors.NewConflictError("responsibility already exists for this system, user and region")
	}

	if role == system.SystemRoleTechnician {
		if err := uc.checkTechnicianSlot(ctx, cmd, scope); err != nil {
			return nil, err
		}
	}

	resp, err := system.NewResponsibility(cmd.SystemID, cmd.UserID, scope, role, cmd.IsDefault)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.respRepo.Save(ctx, resp); err != nil {
		uc.logger.Errorw("failed to save responsibility", "error", err)
		return nil, errors.NewInternalError("failed to save responsibility")
	}

	uc.logger.Infow("responsibility added successfully",
		"responsibility_id", resp.ID(), "system_id", cmd.SystemID, "user_id", cmd.UserID)

	return &AddResponsibilityResult{ResponsibilityID: resp.ID()}, nil
}

// checkTechnicianSlot enforces one technician per routing slot: a single
// region-bound technician per (system, region) and a single republic-wide
// default per system.
func (uc *AddResponsibilityUseCase) checkTechnicianSlot(ctx context.Context, cmd AddResponsibilityCommand, scope system.RegionScope) error {
	if regionID, ok := scope.RegionID(); ok {
		taken, err := uc.respRepo.FindTechnicianForRegion(ctx, cmd.SystemID, regionID)
		if err != nil {
			return errors.NewInternalError("failed to check the technician slot")
		}
		if taken != nil {
			return errors.NewConflictError(fmt.Sprintf("region %d already has a technician for this system", regionID))
		}
		return nil
	}

	if cmd.IsDefault {
		taken, err := uc.respRepo.FindDefaultTechnician(ctx, cmd.SystemID)
		if err != nil {
			return errors.NewInternalError("failed to check the default technician slot")
		}
		if taken != nil {
			return errors.NewConflictError("system already has a default technician")
		}
	}
	return nil
}
