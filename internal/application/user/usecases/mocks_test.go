package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/infrastructure/auth"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/logger"
)

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

// userDirectory returns a repository backed by a fixed set of users,
// looked up by ID and email.
func userDirectory(users ...*user.User) *mockUserRepository {
	byID := make(map[uint]*user.User, len(users))
	byEmail := make(map[string]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
		byEmail[u.Email()] = u
	}
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			if u, ok := byID[userID]; ok {
				return u, nil
			}
			return nil, fmt.Errorf("user %d not found", userID)
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if u, ok := byEmail[email]; ok {
				return u, nil
			}
			return nil, fmt.Errorf("user not found")
		},
	}
}

type mockTicketCounts struct {
	CountByCreatorFunc  func(ctx context.Context, creatorID uint) (int64, error)
	CountByAssigneeFunc func(ctx context.Context, assigneeID uint) (int64, error)
}

func (m *mockTicketCounts) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	if m.CountByCreatorFunc != nil {
		return m.CountByCreatorFunc(ctx, creatorID)
	}
	return 0, nil
}

func (m *mockTicketCounts) CountByAssignee(ctx context.Context, assigneeID uint) (int64, error) {
	if m.CountByAssigneeFunc != nil {
		return m.CountByAssigneeFunc(ctx, assigneeID)
	}
	return 0, nil
}

type mockResponsibilityCleaner struct {
	ListByUserFunc func(ctx context.Context, userID uint) ([]*system.Responsibility, error)
	DeleteFunc     func(ctx context.Context, respID uint) error
}

func (m *mockResponsibilityCleaner) ListByUser(ctx context.Context, userID uint) ([]*system.Responsibility, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockResponsibilityCleaner) Delete(ctx context.Context, respID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, respID)
	}
	return nil
}

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

type fakeHasher struct {
	failVerify bool
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakeHasher) Verify(password, hash string) error {
	if f.failVerify || "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeTokenService struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (*auth.TokenPair, error)
	VerifyFunc   func(token string) (*auth.Claims, error)
}

func (f *fakeTokenService) Generate(userID uint, role authorization.UserRole) (*auth.TokenPair, error) {
	if f.GenerateFunc != nil {
		return f.GenerateFunc(userID, role)
	}
	return &auth.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
		ExpiresIn:    900,
	}, nil
}

func (f *fakeTokenService) Verify(token string) (*auth.Claims, error) {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(token)
	}
	return nil, fmt.Errorf("invalid token")
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

func mustUser(t *testing.T, id uint, role authorization.UserRole, active bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, fmt.Sprintf("User %d", id), fmt.Sprintf("user%d@example.uz", id),
		"hashed:secret123", role, nil, nil, "uz", active, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

func uintPtr(v uint) *uint { return &v }
