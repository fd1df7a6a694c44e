package routing

import (
	"context"

	"yordam/internal/domain/system"
)

// mockResponsibilityRepo answers routing lookups from an in-memory row
// set, mirroring the repository's query semantics.
type mockResponsibilityRepo struct {
	rows []*system.Responsibility

	findTechnicianForRegionFunc func(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error)
	findDefaultTechnicianFunc   func(ctx context.Context, systemID uint) (*system.Responsibility, error)
	listAdminsForSystemFunc     func(ctx context.Context, systemID uint) ([]*system.Responsibility, error)
	listByUserAndRoleFunc       func(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error)
}

func (m *mockResponsibilityRepo) Save(context.Context, *system.Responsibility) error { return nil }
func (m *mockResponsibilityRepo) Delete(context.Context, uint) error                 { return nil }
func (m *mockResponsibilityRepo) GetByID(context.Context, uint) (*system.Responsibility, error) {
	return nil, nil
}
func (m *mockResponsibilityRepo) Exists(context.Context, uint, uint, system.RegionScope) (bool, error) {
	return false, nil
}
func (m *mockResponsibilityRepo) ListBySystem(context.Context, uint) ([]*system.Responsibility, error) {
	return nil, nil
}
func (m *mockResponsibilityRepo) ListByUser(context.Context, uint) ([]*system.Responsibility, error) {
	return nil, nil
}
func (m *mockResponsibilityRepo) CountByUser(context.Context, uint) (int64, error)   { return 0, nil }
func (m *mockResponsibilityRepo) CountBySystem(context.Context, uint) (int64, error) { return 0, nil }

func (m *mockResponsibilityRepo) FindTechnicianForRegion(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
	if m.findTechnicianForRegionFunc != nil {
		return m.findTechnicianForRegionFunc(ctx, systemID, regionID)
	}
	for _, row := range m.rows {
		if row.SystemID() != systemID || !row.IsTechnician() {
			continue
		}
		if id, ok := row.Scope().RegionID(); ok && id == regionID {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockResponsibilityRepo) FindDefaultTechnician(ctx context.Context, systemID uint) (*system.Responsibility, error) {
	if m.findDefaultTechnicianFunc != nil {
		return m.findDefaultTechnicianFunc(ctx, systemID)
	}
	for _, row := range m.rows {
		if row.SystemID() == systemID && row.IsTechnician() && row.IsDefault() && row.Scope().IsRepublicWide() {
			return row, nil
		}
	}
	return nil, nil
}

func (m *mockResponsibilityRepo) ListAdminsForSystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	if m.listAdminsForSystemFunc != nil {
		return m.listAdminsForSystemFunc(ctx, systemID)
	}
	var out []*system.Responsibility
	for _, row := range m.rows {
		if row.SystemID() == systemID && row.IsAdmin() {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *mockResponsibilityRepo) ListByUserAndRole(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error) {
	if m.listByUserAndRoleFunc != nil {
		return m.listByUserAndRoleFunc(ctx, userID, role)
	}
	var out []*system.Responsibility
	for _, row := range m.rows {
		if row.UserID() == userID && row.Role() == role {
			out = append(out, row)
		}
	}
	return out, nil
}
