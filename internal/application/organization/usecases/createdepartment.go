package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/region"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type CreateDepartmentCommand struct {
	Name     string
	RegionID uint
}

type CreateDepartmentResult struct {
	DepartmentID uint `json:"department_id"`
}

type CreateDepartmentUseCase struct {
	regionRepo     region.RegionRepository
	departmentRepo region.DepartmentRepository
	logger         logger.Interface
}

func NewCreateDepartmentUseCase(
	regionRepo region.RegionRepository,
	departmentRepo region.DepartmentRepository,
	logger logger.Interface,
) *CreateDepartmentUseCase {
	return &CreateDepartmentUseCase{
		regionRepo:     regionRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *CreateDepartmentUseCase) Execute(ctx context.Context, cmd CreateDepartmentCommand) (*CreateDepartmentResult, error) {
	uc.logger.Infow("executing create department use case", "name", cmd.Name, "region_id", cmd.RegionID)

	reg, err := uc.regionRepo.GetByID(ctx, cmd.RegionID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("region %d not found", cmd.RegionID))
	}
	if !reg.IsActive() {
		return nil, errors.NewValidationError("region is not active")
	}

	// Department names only need to be unique within their region.
	siblings, err := uc.departmentRepo.ListByRegion(ctx, cmd.RegionID)
	if err != nil {
		uc.logger.Errorw("failed to list departments", "region_id", cmd.RegionID, "error", err)
		return nil, errors.NewInternalError("failed to create department")
	}
	for _, d := range siblings {
		if d.Name() == cmd.Name {
			return nil, errors.NewConflictError(fmt.Sprintf("department %q already exists in this region", cmd.Name))
		}
	}

	dept, err := region.NewDepartment(cmd.Name, cmd.RegionID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.departmentRepo.Save(ctx, dept); err != nil {
		uc.logger.Errorw("failed to save department", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create department")
	}

	uc.logger.Infow("department created successfully", "department_id", dept.ID(), "region_id", cmd.RegionID)

	return &CreateDepartmentResult{DepartmentID: dept.ID()}, nil
}
