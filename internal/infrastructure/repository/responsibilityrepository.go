package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"yordam/internal/domain/system"
	"yordam/internal/infrastructure/persistence/mappers"
	"yordam/internal/infrastructure/persistence/models"
	db "yordam/internal/shared/db"
)

// ResponsibilityRepository backs both the scope resolver and the routing
// engine, so its lookups must stay deterministic: every query that picks
// one row out of several orders by id ascending.
type ResponsibilityRepository struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
}

func NewResponsibilityRepository(database *gorm.DB) *ResponsibilityRepository {
	return &ResponsibilityRepository{
		db:     database,
		mapper: mappers.NewSystemMapper(),
	}
}

func (r *ResponsibilityRepository) Save(ctx context.Context, resp *system.Responsibility) error {
	model := r.mapper.ResponsibilityToModel(resp)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save responsibility: %w", err)
	}

	return resp.SetID(model.ID)
}

func (r *ResponsibilityRepository) Delete(ctx context.Context, respID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.ResponsibilityModel{}, respID).Error; err != nil {
		return fmt.Errorf("failed to delete responsibility: %w", err)
	}
	return nil
}

func (r *ResponsibilityRepository) GetByID(ctx context.Context, respID uint) (*system.Responsibility, error) {
	var model models.ResponsibilityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, respID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("responsibility not found")
		}
		return nil, fmt.Errorf("failed to find responsibility: %w", err)
	}

	return r.mapper.ResponsibilityToDomain(&model)
}

func (r *ResponsibilityRepository) Exists(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ResponsibilityModel{}).
		Where("system_id = ? AND user_id = ?", systemID, userID)
	if regionID, ok := scope.RegionID(); ok {
		query = query.Where("region_id = ?", regionID)
	} else {
		query = query.Where("region_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check responsibility slot: %w", err)
	}
	return count > 0, nil
}

func (r *ResponsibilityRepository) ListBySystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	return r.list(ctx, "system_id = ?", systemID)
}

func (r *ResponsibilityRepository) ListByUser(ctx context.Context, userID uint) ([]*system.Responsibility, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *ResponsibilityRepository) ListByUserAndRole(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error) {
	return r.list(ctx, "user_id = ? AND role_in_system = ?", userID, role.String())
}

func (r *ResponsibilityRepository) FindTechnicianForRegion(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
	return r.findOne(ctx,
		"system_id = ? AND region_id = ? AND role_in_system = ?",
		systemID, regionID, system.SystemRoleTechnician.String())
}

func (r *ResponsibilityRepository) FindDefaultTechnician(ctx context.Context, systemID uint) (*system.Responsibility, error) {
	return r.findOne(ctx,
		"system_id = ? AND region_id IS NULL AND is_default = ? AND role_in_system = ?",
		systemID, true, system.SystemRoleTechnician.String())
}

func (r *ResponsibilityRepository) ListAdminsForSystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	return r.list(ctx, "system_id = ? AND role_in_system = ?", systemID, system.SystemRoleAdmin.String())
}

func (r *ResponsibilityRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return r.count(ctx, "user_id = ?", userID)
}

func (r *ResponsibilityRepository) CountBySystem(ctx context.Context, systemID uint) (int64, error) {
	return r.count(ctx, "system_id = ?", systemID)
}

func (r *ResponsibilityRepository) findOne(ctx context.Context, cond string, args ...interface{}) (*system.Responsibility, error) {
	var model models.ResponsibilityModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where(cond, args...).Order("id ASC").First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find responsibility: %w", err)
	}

	return r.mapper.ResponsibilityToDomain(&model)
}

func (r *ResponsibilityRepository) list(ctx context.Context, cond string, args ...interface{}) ([]*system.Responsibility, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.ResponsibilityModel
	err := tx.Where(cond, args...).Order("id ASC").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list responsibilities: %w", err)
	}

	resps := make([]*system.Responsibility, 0, len(modelList))
	for i := range modelList {
		resp, err := r.mapper.ResponsibilityToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}

	return resps, nil
}

func (r *ResponsibilityRepository) count(ctx context.Context, cond string, args ...interface{}) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.ResponsibilityModel{}).Where(cond, args...).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count responsibilities: %w", err)
	}
	return count, nil
}
