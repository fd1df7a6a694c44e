package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"yordam/internal/domain/region"
	"yordam/internal/infrastructure/persistence/mappers"
	"yordam/internal/infrastructure/persistence/models"
	db "yordam/internal/shared/db"
)

type RegionRepository struct {
	db     *gorm.DB
	mapper mappers.RegionMapper
}

func NewRegionRepository(database *gorm.DB) *RegionRepository {
	return &RegionRepository{
		db:     database,
		mapper: mappers.NewRegionMapper(),
	}
}

func (r *RegionRepository) Save(ctx context.Context, reg *region.Region) error {
	model := r.mapper.ToModel(reg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save region: %w", err)
	}

	return reg.SetID(model.ID)
}

func (r *RegionRepository) Update(ctx context.Context, reg *region.Region) error {
	model := r.mapper.ToModel(reg)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.RegionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update region: %w", result.Error)
	}

	return nil
}

func (r *RegionRepository) Delete(ctx context.Context, regionID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.RegionModel{}, regionID).Error; err != nil {
		return fmt.Errorf("failed to delete region: %w", err)
	}
	return nil
}

func (r *RegionRepository) GetByID(ctx context.Context, regionID uint) (*region.Region, error) {
	var model models.RegionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, regionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("region not found")
		}
		return nil, fmt.Errorf("failed to find region: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RegionRepository) GetByCode(ctx context.Context, code string) (*region.Region, error) {
	var model models.RegionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("region not found")
		}
		return nil, fmt.Errorf("failed to find region: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RegionRepository) List(ctx context.Context, activeOnly bool) ([]*region.Region, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.RegionModel{}).Order("name ASC")
	if activeOnly {
		query = query.Scopes(db.Active())
	}

	var modelList []models.RegionModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	regions := make([]*region.Region, 0, len(modelList))
	for i := range modelList {
		reg, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		regions = append(regions, reg)
	}

	return regions, nil
}

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.RegionMapper
}

func NewDepartmentRepository(database *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     database,
		mapper: mappers.NewRegionMapper(),
	}
}

func (r *DepartmentRepository) Save(ctx context.Context, dept *region.Department) error {
	model := r.mapper.DepartmentToModel(dept)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}

	return dept.SetID(model.ID)
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *region.Department) error {
	model := r.mapper.DepartmentToModel(dept)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update department: %w", result.Error)
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, departmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.DepartmentModel{}, departmentID).Error; err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, departmentID uint) (*region.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, departmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("department not found")
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.DepartmentToDomain(&model)
}

func (r *DepartmentRepository) ListByRegion(ctx context.Context, regionID uint) ([]*region.Department, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.DepartmentModel
	err := tx.Where("region_id = ?", regionID).Order("name ASC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return r.toDepartments(modelList)
}

func (r *DepartmentRepository) List(ctx context.Context, activeOnly bool) ([]*region.Department, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.DepartmentModel{}).Order("name ASC")
	if activeOnly {
		query = query.Scopes(db.Active())
	}

	var modelList []models.DepartmentModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return r.toDepartments(modelList)
}

func (r *DepartmentRepository) toDepartments(modelList []models.DepartmentModel) ([]*region.Department, error) {
	departments := make([]*region.Department, 0, len(modelList))
	for i := range modelList {
		dept, err := r.mapper.DepartmentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, nil
}
