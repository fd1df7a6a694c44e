package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yordam/internal/domain/region"
)

func TestListRegions_MapsToDTOs(t *testing.T) {
	regionRepo := &mockRegionRepository{
		ListFunc: func(ctx context.Context, activeOnly bool) ([]*region.Region, error) {
			return []*region.Region{
				mustRegion(t, 1, "Toshkent shahri", "TAS", true),
				mustRegion(t, 3, "Samarqand viloyati", "SAM", true),
			}, nil
		},
	}

	uc := NewListRegionsUseCase(regionRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListRegionsQuery{ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, result.Regions, 2)
	assert.Equal(t, "TAS", result.Regions[0].Code)
	assert.Equal(t, "Samarqand viloyati", result.Regions[1].Name)
}

func TestCreateDepartment_Success(t *testing.T) {
	regionRepo := &mockRegionRepository{
		GetByIDFunc: func(ctx context.Context, regionID uint) (*region.Region, error) {
			return mustRegion(t, regionID, "Samarqand viloyati", "SAM", true), nil
		},
	}

	var saved *region.Department
	departmentRepo := &mockDepartmentRepository{
		SaveFunc: func(ctx context.Context, d *region.Department) error {
			d.SetID(7)
			saved = d
			return nil
		},
	}

	uc := NewCreateDepartmentUseCase(regionRepo, departmentRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateDepartmentCommand{
		Name:     "Axborot texnologiyalari bo'limi",
		RegionID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.DepartmentID)
	require.NotNil(t, saved)
	assert.Equal(t, uint(3), saved.RegionID())
	assert.True(t, saved.IsActive())
}

func TestCreateDepartment_DuplicateNameInRegion(t *testing.T) {
	regionRepo := &mockRegionRepository{
		GetByIDFunc: func(ctx context.Context, regionID uint) (*region.Region, error) {
			return mustRegion(t, regionID, "Samarqand viloyati", "SAM", true), nil
		},
	}
	departmentRepo := &mockDepartmentRepository{
		ListByRegionFunc: func(ctx context.Context, regionID uint) ([]*region.Department, error) {
			return []*region.Department{mustDepartment(t, 7, "Kadrlar bo'limi", regionID, true)}, nil
		},
	}

	uc := NewCreateDepartmentUseCase(regionRepo, departmentRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateDepartmentCommand{
		Name:     "Kadrlar bo'limi",
		RegionID: 3,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateDepartment_InactiveRegion(t *testing.T) {
	regionRepo := &mockRegionRepository{
		GetByIDFunc: func(ctx context.Context, regionID uint) (*region.Region, error) {
			return mustRegion(t, regionID, "Eski tuman", "OLD", false), nil
		},
	}

	uc := NewCreateDepartmentUseCase(regionRepo, &mockDepartmentRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateDepartmentCommand{Name: "X", RegionID: 9})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestCreateDepartment_UnknownRegion(t *testing.T) {
	uc := NewCreateDepartmentUseCase(&mockRegionRepository{}, &mockDepartmentRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateDepartmentCommand{Name: "X", RegionID: 99})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestToggleDepartment_Deactivates(t *testing.T) {
	dept := mustDepartment(t, 7, "Kadrlar bo'limi", 3, true)
	var updated *region.Department
	departmentRepo := &mockDepartmentRepository{
		GetByIDFunc: func(ctx context.Context, departmentID uint) (*region.Department, error) {
			return dept, nil
		},
		UpdateFunc: func(ctx context.Context, d *region.Department) error {
			updated = d
			return nil
		},
	}

	uc := NewToggleDepartmentUseCase(departmentRepo, &mockLogger{})
	err := uc.Execute(context.Background(), ToggleDepartmentCommand{DepartmentID: 7, Active: false})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())
}

func TestDeleteDepartment_Success(t *testing.T) {
	var deleted uint
	departmentRepo := &mockDepartmentRepository{
		GetByIDFunc: func(ctx context.Context, departmentID uint) (*region.Department, error) {
			return mustDepartment(t, departmentID, "Kadrlar bo'limi", 3, true), nil
		},
		DeleteFunc: func(ctx context.Context, departmentID uint) error {
			deleted = departmentID
			return nil
		},
	}

	uc := NewDeleteDepartmentUseCase(departmentRepo, &mockMemberCounter{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteDepartmentCommand{DepartmentID: 7})

	require.NoError(t, err)
	assert.Equal(t, uint(7), deleted)
}

func TestDeleteDepartment_BlockedByMembers(t *testing.T) {
	departmentRepo := &mockDepartmentRepository{
		GetByIDFunc: func(ctx context.Context, departmentID uint) (*region.Department, error) {
			return mustDepartment(t, departmentID, "Kadrlar bo'limi", 3, true), nil
		},
		DeleteFunc: func(ctx context.Context, departmentID uint) error {
			t.Fatal("department with members must not be deleted")
			return nil
		},
	}
	counter := &mockMemberCounter{
		CountByDepartmentFunc: func(ctx context.Context, departmentID uint) (int64, error) {
			return 4, nil
		},
	}

	uc := NewDeleteDepartmentUseCase(departmentRepo, counter, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteDepartmentCommand{DepartmentID: 7})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 members")
}

func TestListDepartments_ByRegion(t *testing.T) {
	departmentRepo := &mockDepartmentRepository{
		ListByRegionFunc: func(ctx context.Context, regionID uint) ([]*region.Department, error) {
			return []*region.Department{
				mustDepartment(t, 7, "Kadrlar bo'limi", regionID, true),
				mustDepartment(t, 8, "Yopilgan bo'lim", regionID, false),
			}, nil
		},
		ListFunc: func(ctx context.Context, activeOnly bool) ([]*region.Department, error) {
			t.Fatal("region-scoped query must use ListByRegion")
			return nil, nil
		},
	}

	uc := NewListDepartmentsUseCase(departmentRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListDepartmentsQuery{RegionID: uintPtr(3), ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, result.Departments, 1)
	assert.Equal(t, uint(7), result.Departments[0].ID)
}
