package mappers

import (
	"fmt"
	"time"

	"yordam/internal/domain/system"
	"yordam/internal/infrastructure/persistence/models"
)

type SystemMapper interface {
	ToModel(s *system.System) *models.SystemModel
	ToDomain(model *models.SystemModel) (*system.System, error)
	ResponsibilityToModel(r *system.Responsibility) *models.ResponsibilityModel
	ResponsibilityToDomain(model *models.ResponsibilityModel) (*system.Responsibility, error)
}

type SystemMapperImpl struct{}

func NewSystemMapper() SystemMapper {
	return &SystemMapperImpl{}
}

func (m *SystemMapperImpl) ToModel(s *system.System) *models.SystemModel {
	return &models.SystemModel{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		IsActive:    s.IsActive(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *SystemMapperImpl) ToDomain(model *models.SystemModel) (*system.System, error) {
	return system.ReconstructSystem(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *SystemMapperImpl) ResponsibilityToModel(r *system.Responsibility) *models.ResponsibilityModel {
	return &models.ResponsibilityModel{
		ID:           r.ID(),
		SystemID:     r.SystemID(),
		UserID:       r.UserID(),
		RegionID:     r.Scope().RegionIDPtr(),
		RoleInSystem: r.Role().String(),
		IsDefault:    r.IsDefault(),
		CreatedAt:    r.CreatedAt().UnixMilli(),
	}
}

func (m *SystemMapperImpl) ResponsibilityToDomain(model *models.ResponsibilityModel) (*system.Responsibility, error) {
	role, err := system.NewSystemRole(model.RoleInSystem)
	if err != nil {
		return nil, fmt.Errorf("responsibility %d: %w", model.ID, err)
	}

	return system.ReconstructResponsibility(
		model.ID,
		model.SystemID,
		model.UserID,
		system.RegionScopeFromPtr(model.RegionID),
		role,
		model.IsDefault,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
