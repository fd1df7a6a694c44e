package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/region"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ToggleDepartmentCommand struct {
	DepartmentID uint
	Active       bool
}

type ToggleDepartmentUseCase struct {
	departmentRepo region.DepartmentRepository
	logger         logger.Interface
}

func NewToggleDepartmentUseCase(departmentRepo region.DepartmentRepository, logger logger.Interface) *ToggleDepartmentUseCase {
	return &ToggleDepartmentUseCase{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *ToggleDepartmentUseCase) Execute(ctx context.Context, cmd ToggleDepartmentCommand) error {
	dept, err := uc.departmentRepo.GetByID(ctx, cmd.DepartmentID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("department %d not found", cmd.DepartmentID))
	}

	if cmd.Active {
		dept.Activate()
	} else {
		dept.Deactivate()
	}

	if err := uc.departmentRepo.Update(ctx, dept); err != nil {
		uc.logger.Errorw("failed to update department", "department_id", cmd.DepartmentID, "error", err)
		return errors.NewInternalError("failed to update department")
	}

	uc.logger.Infow("department active flag changed", "department_id", cmd.DepartmentID, "active", cmd.Active)
	return nil
}
