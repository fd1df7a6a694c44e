package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yordam/internal/domain/region"
	"yordam/internal/shared/logger"
)

type mockRegionRepository struct {
	SaveFunc      func(ctx context.Context, r *region.Region) error
	UpdateFunc    func(ctx context.Context, r *region.Region) error
	DeleteFunc    func(ctx context.Context, regionID uint) error
	GetByIDFunc   func(ctx context.Context, regionID uint) (*region.Region, error)
	GetByCodeFunc func(ctx context.Context, code string) (*region.Region, error)
	ListFunc      func(ctx context.Context, activeOnly bool) ([]*region.Region, error)
}

func (m *mockRegionRepository) Save(ctx context.Context, r *region.Region) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRegionRepository) Update(ctx context.Context, r *region.Region) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRegionRepository) Delete(ctx context.Context, regionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, regionID)
	}
	return nil
}

func (m *mockRegionRepository) GetByID(ctx context.Context, regionID uint) (*region.Region, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, regionID)
	}
	return nil, fmt.Errorf("region not found")
}

func (m *mockRegionRepository) GetByCode(ctx context.Context, code string) (*region.Region, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, fmt.Errorf("region not found")
}

func (m *mockRegionRepository) List(ctx context.Context, activeOnly bool) ([]*region.Region, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockDepartmentRepository struct {
	SaveFunc         func(ctx context.Context, d *region.Department) error
	UpdateFunc       func(ctx context.Context, d *region.Department) error
	DeleteFunc       func(ctx context.Context, departmentID uint) error
	GetByIDFunc      func(ctx context.Context, departmentID uint) (*region.Department, error)
	ListByRegionFunc func(ctx context.Context, regionID uint) ([]*region.Department, error)
	ListFunc         func(ctx context.Context, activeOnly bool) ([]*region.Department, error)
}

func (m *mockDepartmentRepository) Save(ctx context.Context, d *region.Department) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Update(ctx context.Context, d *region.Department) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) Delete(ctx context.Context, departmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, departmentID)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, departmentID uint) (*region.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, departmentID)
	}
	return nil, fmt.Errorf("department not found")
}

func (m *mockDepartmentRepository) ListByRegion(ctx context.Context, regionID uint) ([]*region.Department, error) {
	if m.ListByRegionFunc != nil {
		return m.ListByRegionFunc(ctx, regionID)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) List(ctx context.Context, activeOnly bool) ([]*region.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

type mockMemberCounter struct {
	CountByDepartmentFunc func(ctx context.Context, departmentID uint) (int64, error)
}

func (m *mockMemberCounter) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	if m.CountByDepartmentFunc != nil {
		return m.CountByDepartmentFunc(ctx, departmentID)
	}
	return 0, nil
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

func mustRegion(t *testing.T, id uint, name, code string, active bool) *region.Region {
	t.Helper()
	r, err := region.ReconstructRegion(id, name, code, active, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("reconstruct region: %v", err)
	}
	return r
}

func mustDepartment(t *testing.T, id uint, name string, regionID uint, active bool) *region.Department {
	t.Helper()
	d, err := region.ReconstructDepartment(id, name, regionID, active, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("reconstruct department: %v", err)
	}
	return d
}

func uintPtr(v uint) *uint { return &v }
