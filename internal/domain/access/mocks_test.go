package access

import (
	"context"

	"yordam/internal/domain/system"
)

type mockResponsibilityRepo struct {
	saveFunc                    func(ctx context.Context, resp *system.Responsibility) error
	deleteFunc                  func(ctx context.Context, respID uint) error
	getByIDFunc                 func(ctx context.Context, respID uint) (*system.Responsibility, error)
	existsFunc                  func(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error)
	listBySystemFunc            func(ctx context.Context, systemID uint) ([]*system.Responsibility, error)
	listByUserFunc              func(ctx context.Context, userID uint) ([]*system.Responsibility, error)
	listByUserAndRoleFunc       func(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error)
	findTechnicianForRegionFunc func(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error)
	findDefaultTechnicianFunc   func(ctx context.Context, systemID uint) (*system.Responsibility, error)
	listAdminsForSystemFunc     func(ctx context.Context, systemID uint) ([]*system.Responsibility, error)
	countByUserFunc             func(ctx context.Context, userID uint) (int64, error)
	countBySystemFunc           func(ctx context.Context, systemID uint) (int64, error)
}

func (m *mockResponsibilityRepo) Save(ctx context.Context, resp *system.Responsibility) error {
	return m.saveFunc(ctx, resp)
}

func (m *mockResponsibilityRepo) Delete(ctx context.Context, respID uint) error {
	return m.deleteFunc(ctx, respID)
}

func (m *mockResponsibilityRepo) GetByID(ctx context.Context, respID uint) (*system.Responsibility, error) {
	return m.getByIDFunc(ctx, respID)
}

func (m *mockResponsibilityRepo) Exists(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error) {
	return m.existsFunc(ctx, systemID, userID, scope)
}

func (m *mockResponsibilityRepo) ListBySystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	return m.listBySystemFunc(ctx, systemID)
}

func (m *mockResponsibilityRepo) ListByUser(ctx context.Context, userID uint) ([]*system.Responsibility, error) {
	return m.listByUserFunc(ctx, userID)
}

func (m *mockResponsibilityRepo) ListByUserAndRole(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error) {
	return m.listByUserAndRoleFunc(ctx, userID, role)
}

func (m *mockResponsibilityRepo) FindTechnicianForRegion(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
	return m.findTechnicianForRegionFunc(ctx, systemID, regionID)
}

func (m *mockResponsibilityRepo) FindDefaultTechnician(ctx context.Context, systemID uint) (*system.Responsibility, error) {
	return m.findDefaultTechnicianFunc(ctx, systemID)
}

func (m *mockResponsibilityRepo) ListAdminsForSystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	return m.listAdminsForSystemFunc(ctx, systemID)
}

func (m *mockResponsibilityRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return m.countByUserFunc(ctx, userID)
}

func (m *mockResponsibilityRepo) CountBySystem(ctx context.Context, systemID uint) (int64, error) {
	return m.countBySystemFunc(ctx, systemID)
}
