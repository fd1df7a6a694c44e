package mappers

import (
	"time"

	"yordam/internal/domain/region"
	"yordam/internal/infrastructure/persistence/models"
)

type RegionMapper interface {
	ToModel(r *region.Region) *models.RegionModel
	ToDomain(model *models.RegionModel) (*region.Region, error)
	DepartmentToModel(d *region.Department) *models.DepartmentModel
	DepartmentToDomain(model *models.DepartmentModel) (*region.Department, error)
}

type RegionMapperImpl struct{}

func NewRegionMapper() RegionMapper {
	return &RegionMapperImpl{}
}

func (m *RegionMapperImpl) ToModel(r *region.Region) *models.RegionModel {
	return &models.RegionModel{
		ID:        r.ID(),
		Name:      r.Name(),
		Code:      r.Code(),
		IsActive:  r.IsActive(),
		CreatedAt: r.CreatedAt().UnixMilli(),
		UpdatedAt: r.UpdatedAt().UnixMilli(),
	}
}

func (m *RegionMapperImpl) ToDomain(model *models.RegionModel) (*region.Region, error) {
	return region.ReconstructRegion(
		model.ID,
		model.Name,
		model.Code,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *RegionMapperImpl) DepartmentToModel(d *region.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:        d.ID(),
		Name:      d.Name(),
		RegionID:  d.RegionID(),
		IsActive:  d.IsActive(),
		CreatedAt: d.CreatedAt().UnixMilli(),
		UpdatedAt: d.UpdatedAt().UnixMilli(),
	}
}

func (m *RegionMapperImpl) DepartmentToDomain(model *models.DepartmentModel) (*region.Department, error) {
	return region.ReconstructDepartment(
		model.ID,
		model.Name,
		model.RegionID,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
