package usecases

import (
	"context"

	"yordam/internal/domain/region"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type ListDepartmentsQuery struct {
	RegionID   *uint
	ActiveOnly bool
}

type DepartmentDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	RegionID uint   `json:"region_id"`
	IsActive bool   `json:"is_active"`
}

type ListDepartmentsResult struct {
	Departments []*DepartmentDTO
}

type ListDepartmentsUseCase struct {
	departmentRepo region.DepartmentRepository
	logger         logger.Interface
}

func NewListDepartmentsUseCase(departmentRepo region.DepartmentRepository, logger logger.Interface) *ListDepartmentsUseCase {
	return &ListDepartmentsUseCase{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *ListDepartmentsUseCase) Execute(ctx context.Context, query ListDepartmentsQuery) (*ListDepartmentsResult, error) {
	var (
		departments []*region.Department
		err         error
	)
	if query.RegionID != nil {
		departments, err = uc.departmentRepo.ListByRegion(ctx, *query.RegionID)
	} else {
		departments, err = uc.departmentRepo.List(ctx, query.ActiveOnly)
	}
	if err != nil {
		uc.logger.Errorw("failed to list departments", "error", err)
		return nil, errors.NewInternalError("failed to list departments")
	}

	dtos := make([]*DepartmentDTO, 0, len(departments))
	for _, d := range departments {
		if query.ActiveOnly && !d.IsActive() {
			continue
		}
		dtos = append(dtos, &DepartmentDTO{
			ID:       d.ID(),
			Name:     d.Name(),
			RegionID: d.RegionID(),
			IsActive: d.IsActive(),
		})
	}

	return &ListDepartmentsResult{Departments: dtos}, nil
}
