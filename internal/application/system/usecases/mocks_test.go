package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/logger"
)

type mockSystemRepository struct {
	SaveFunc      func(ctx context.Context, s *system.System) error
	UpdateFunc    func(ctx context.Context, s *system.System) error
	DeleteFunc    func(ctx context.Context, systemID uint) error
	GetByIDFunc   func(ctx context.Context, systemID uint) (*system.System, error)
	GetByNameFunc func(ctx context.Context, name string) (*system.System, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*system.System, error)
}

func (m *mockSystemRepository) Save(ctx context.Context, s *system.System) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSystemRepository) Update(ctx context.Context, s *system.System) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSystemRepository) Delete(ctx context.Context, systemID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, systemID)
	}
	return nil
}

func (m *mockSystemRepository) GetByID(ctx context.Context, systemID uint) (*system.System, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, systemID)
	}
	return nil, fmt.Errorf("system not found")
}

func (m *mockSystemRepository) GetByName(ctx context.Context, name string) (*system.System, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, fmt.Errorf("system not found")
}

func (m *mockSystemRepository) List(ctx context.Context, activeOnly bool) ([]*system.System, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockResponsibilityRepository struct {
	SaveFunc                    func(ctx context.Context, resp *system.Responsibility) error
	DeleteFunc                  func(ctx context.Context, respID uint) error
	GetByIDFunc                 func(ctx context.Context, respID uint) (*system.Responsibility, error)
	ExistsFunc                  func(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error)
	ListBySystemFunc            func(ctx context.Context, systemID uint) ([]*system.Responsibility, error)
	ListByUserFunc              func(ctx context.Context, userID uint) ([]*system.Responsibility, error)
	ListByUserAndRoleFunc       func(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error)
	FindTechnicianForRegionFunc func(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error)
	FindDefaultTechnicianFunc   func(ctx context.Context, systemID uint) (*system.Responsibility, error)
	ListAdminsForSystemFunc     func(ctx context.Context, systemID uint) ([]*system.Responsibility, error)
	CountByUserFunc             func(ctx context.Context, userID uint) (int64, error)
	CountBySystemFunc           func(ctx context.Context, systemID uint) (int64, error)
}

func (m *mockResponsibilityRepository) Save(ctx context.Context, resp *system.Responsibility) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, resp)
	}
	return nil
}

func (m *mockResponsibilityRepository) Delete(ctx context.Context, respID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, respID)
	}
	return nil
}

func (m *mockResponsibilityRepository) GetByID(ctx context.Context, respID uint) (*system.Responsibility, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, respID)
	}
	return nil, fmt.Errorf("responsibility not found")
}

func (m *mockResponsibilityRepository) Exists(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, systemID, userID, scope)
	}
	return false, nil
}

func (m *mockResponsibilityRepository) ListBySystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	if m.ListBySystemFunc != nil {
		return m.ListBySystemFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) ListByUser(ctx context.Context, userID uint) ([]*system.Responsibility, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) ListByUserAndRole(ctx context.Context, userID uint, role system.SystemRole) ([]*system.Responsibility, error) {
	if m.ListByUserAndRoleFunc != nil {
		return m.ListByUserAndRoleFunc(ctx, userID, role)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) FindTechnicianForRegion(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
	if m.FindTechnicianForRegionFunc != nil {
		return m.FindTechnicianForRegionFunc(ctx, systemID, regionID)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) FindDefaultTechnician(ctx context.Context, systemID uint) (*system.Responsibility, error) {
	if m.FindDefaultTechnicianFunc != nil {
		return m.FindDefaultTechnicianFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) ListAdminsForSystem(ctx context.Context, systemID uint) ([]*system.Responsibility, error) {
	if m.ListAdminsForSystemFunc != nil {
		return m.ListAdminsForSystemFunc(ctx, systemID)
	}
	return nil, nil
}

func (m *mockResponsibilityRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockResponsibilityRepository) CountBySystem(ctx context.Context, systemID uint) (int64, error) {
	if m.CountBySystemFunc != nil {
		return m.CountBySystemFunc(ctx, systemID)
	}
	return 0, nil
}

type mockUserRepository struct {
	SaveFunc              func(ctx context.Context, u *user.User) error
	UpdateFunc            func(ctx context.Context, u *user.User) error
	DeleteFunc            func(ctx context.Context, userID uint) error
	GetByIDFunc           func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*user.User, error)
	ListFunc              func(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error)
	CountByRoleFunc       func(ctx context.Context) (map[authorization.UserRole]int64, error)
	CountByDepartmentFunc func(ctx context.Context, departmentID uint) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, fmt.Errorf("user not found")
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, fmt.Errorf("user not found")
}

func (m *mockUserRepository) List(ctx context.Context, filter user.UserFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) CountByRole(ctx context.Context) (map[authorization.UserRole]int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	if m.CountByDepartmentFunc != nil {
		return m.CountByDepartmentFunc(ctx, departmentID)
	}
	return 0, nil
}

type mockTicketCounter struct {
	CountBySystemIDFunc func(ctx context.Context, systemID uint) (int64, error)
}

func (m *mockTicketCounter) CountBySystemID(ctx context.Context, systemID uint) (int64, error) {
	if m.CountBySystemIDFunc != nil {
		return m.CountBySystemIDFunc(ctx, systemID)
	}
	return 0, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func mustSystem(t *testing.T, id uint, name string) *system.System {
	t.Helper()
	s, err := system.ReconstructSystem(id, name, "", true, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("reconstruct system: %v", err)
	}
	return s
}

func mustUser(t *testing.T, id uint, role authorization.UserRole, regionID *uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "Test User", fmt.Sprintf("user%d@example.uz", id), "hash", role,
		regionID, nil, "uz", true, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

func mustResponsibility(t *testing.T, id, systemID, userID uint, scope system.RegionScope, role system.SystemRole, isDefault bool) *system.Responsibility {
	t.Helper()
	r, err := system.ReconstructResponsibility(id, systemID, userID, scope, role, isDefault, time.Now())
	if err != nil {
		t.Fatalf("reconstruct responsibility: %v", err)
	}
	return r
}

func uintPtr(v uint) *uint { return &v }
