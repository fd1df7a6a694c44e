package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yordam/internal/domain/system"
	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
)

func addResponsibilityFixture(t *testing.T) (*mockSystemRepository, *mockResponsibilityRepository, *mockUserRepository) {
	t.Helper()
	systemRepo := &mockSystemRepository{
		GetByIDFunc: func(ctx context.Context, systemID uint) (*system.System, error) {
			return mustSystem(t, systemID, "E-Qabul"), nil
		},
	}
	respRepo := &mockResponsibilityRepository{}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return mustUser(t, userID, authorization.RoleTechnician, uintPtr(3)), nil
		},
	}
	return systemRepo, respRepo, userRepo
}

func TestAddResponsibility_RegionTechnician(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)

	var saved *system.Responsibility
	respRepo.SaveFunc = func(ctx context.Context, resp *system.Responsibility) error {
		resp.SetID(40)
		saved = resp
		return nil
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		RegionID: uintPtr(3),
		Role:     "technician",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(40), result.ResponsibilityID)
	require.NotNil(t, saved)
	regionID, ok := saved.Scope().RegionID()
	require.True(t, ok)
	assert.Equal(t, uint(3), regionID)
	assert.Equal(t, system.SystemRoleTechnician, saved.Role())
}

func TestAddResponsibility_InvalidRole(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		Role:     "operator",
	})

	require.Error(t, err)
}

func TestAddResponsibility_DeactivatedUser(t *testing.T) {
	systemRepo, respRepo, _ := addResponsibilityFixture(t)
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			u := mustUser(t, userID, authorization.RoleTechnician, uintPtr(3))
			u.Deactivate()
			return u, nil
		},
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		Role:     "technician",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestAddResponsibility_DefaultMustBeRepublicWide(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID:  1,
		UserID:    20,
		RegionID:  uintPtr(3),
		Role:      "technician",
		IsDefault: true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "republic-wide")
}

func TestAddResponsibility_DuplicateConflict(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)
	respRepo.ExistsFunc = func(ctx context.Context, systemID, userID uint, scope system.RegionScope) (bool, error) {
		return true, nil
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		RegionID: uintPtr(3),
		Role:     "technician",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddResponsibility_RegionSlotTaken(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)
	respRepo.FindTechnicianForRegionFunc = func(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
		return mustResponsibility(t, 9, systemID, 77, mustRegionScope(t, regionID), system.SystemRoleTechnician, false), nil
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		RegionID: uintPtr(3),
		Role:     "technician",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already has a technician")
}

func TestAddResponsibility_DefaultSlotTaken(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)
	respRepo.FindDefaultTechnicianFunc = func(ctx context.Context, systemID uint) (*system.Responsibility, error) {
		return mustResponsibility(t, 9, systemID, 77, system.RepublicWide(), system.SystemRoleTechnician, true), nil
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID:  1,
		UserID:    20,
		Role:      "technician",
		IsDefault: true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "default technician")
}

func TestAddResponsibility_AdminSkipsTechnicianSlotCheck(t *testing.T) {
	systemRepo, respRepo, userRepo := addResponsibilityFixture(t)
	respRepo.FindTechnicianForRegionFunc = func(ctx context.Context, systemID, regionID uint) (*system.Responsibility, error) {
		t.Fatal("admin responsibilities do not occupy technician slots")
		return nil, nil
	}
	respRepo.SaveFunc = func(ctx context.Context, resp *system.Responsibility) error {
		resp.SetID(41)
		return nil
	}

	uc := NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddResponsibilityCommand{
		SystemID: 1,
		UserID:   20,
		RegionID: uintPtr(3),
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(41), result.ResponsibilityID)
}

func TestRemoveResponsibility_Success(t *testing.T) {
	var deleted uint
	respRepo := &mockResponsibilityRepository{
		GetByIDFunc: func(ctx context.Context, respID uint) (*system.Responsibility, error) {
			return mustResponsibility(t, respID, 1, 20, system.RepublicWide(), system.SystemRoleTechnician, false), nil
		},
		DeleteFunc: func(ctx context.Context, respID uint) error {
			deleted = respID
			return nil
		},
	}

	uc := NewRemoveResponsibilityUseCase(respRepo, &mockLogger{})
	err := uc.Execute(context.Background(), RemoveResponsibilityCommand{ResponsibilityID: 11})

	require.NoError(t, err)
	assert.Equal(t, uint(11), deleted)
}

func TestRemoveResponsibility_NotFound(t *testing.T) {
	respRepo := &mockResponsibilityRepository{
		GetByIDFunc: func(ctx context.Context, respID uint) (*system.Responsibility, error) {
			return nil, fmt.Errorf("responsibility not found")
		},
	}

	uc := NewRemoveResponsibilityUseCase(respRepo, &mockLogger{})
	err := uc.Execute(context.Background(), RemoveResponsibilityCommand{ResponsibilityID: 11})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func mustRegionScope(t *testing.T, regionID uint) system.RegionScope {
	t.Helper()
	scope, err := system.ForRegion(regionID)
	if err != nil {
		t.Fatalf("region scope: %v", err)
	}
	return scope
}
