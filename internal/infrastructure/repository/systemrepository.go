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

type SystemRepository struct {
	db     *gorm.DB
	mapper mappers.SystemMapper
}

func NewSystemRepository(database *gorm.DB) *SystemRepository {
	return &SystemRepository{
		db:     database,
		mapper: mappers.NewSystemMapper(),
	}
}

func (r *SystemRepository) Save(ctx context.Context, s *system.System) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save system: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SystemRepository) Update(ctx context.Context, s *system.System) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SystemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update system: %w", result.Error)
	}

	return nil
}

func (r *SystemRepository) Delete(ctx context.Context, systemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.SystemModel{}, systemID).Error; err != nil {
		return fmt.Errorf("failed to delete system: %w", err)
	}
	return nil
}

func (r *SystemRepository) GetByID(ctx context.Context, systemID uint) (*system.System, error) {
	var model models.SystemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, systemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("system not found")
		}
		return nil, fmt.Errorf("failed to find system: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SystemRepository) GetByName(ctx context.Context, name string) (*system.System, error) {
	var model models.SystemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("system not found")
		}
		return nil, fmt.Errorf("failed to find system: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SystemRepository) List(ctx context.Context, activeOnly bool) ([]*system.System, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SystemModel{}).Order("name ASC")
	if activeOnly {
		query = query.Scopes(db.Active())
	}

	var modelList []models.SystemModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list systems: %w", err)
	}

	systems := make([]*system.System, 0, len(modelList))
	for i := range modelList {
		s, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		systems = append(systems, s)
	}

	return systems, nil
}
