package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yordam/internal/domain/system"
	"yordam/internal/shared/authorization"
)

func TestDeleteUser_RemovesResponsibilitiesThenAccount(t *testing.T) {
	super := mustUser(t, 1, authorization.RoleSuperAdmin, true)
	target := mustUser(t, 2, authorization.RoleTechnician, true)
	repo := userDirectory(super, target)

	var deletedUser uint
	repo.DeleteFunc = func(ctx context.Context, userID uint) error {
		deletedUser = userID
		return nil
	}

	resp, err := system.ReconstructResponsibility(11, 1, 2, system.RepublicWide(), system.SystemRoleTechnician, false, time.Now())
	require.NoError(t, err)

	var deletedResps []uint
	cleaner := &mockResponsibilityCleaner{
		ListByUserFunc: func(ctx context.Context, userID uint) ([]*system.Responsibility, error) {
			return []*system.Responsibility{resp}, nil
		},
		DeleteFunc: func(ctx context.Context, respID uint) error {
			deletedResps = append(deletedResps, respID)
			return nil
		},
	}

	uc := NewDeleteUserUseCase(repo, &mockTicketCounts{}, cleaner, &fakeTxManager{}, &mockLogger{})
	err = uc.Execute(context.Background(), DeleteUserCommand{ActorID: 1, UserID: 2})

	require.NoError(t, err)
	assert.Equal(t, []uint{11}, deletedResps)
	assert.Equal(t, uint(2), deletedUser)
}

func TestDeleteUser_BlockedByTicketReferences(t *testing.T) {
	super := mustUser(t, 1, authorization.RoleSuperAdmin, true)
	target := mustUser(t, 2, authorization.RoleTechnician, true)
	repo := userDirectory(super, target)
	repo.DeleteFunc = func(ctx context.Context, userID uint) error {
		t.Fatal("referenced user must not be deleted")
		return nil
	}

	counts := &mockTicketCounts{
		CountByCreatorFunc: func(ctx context.Context, creatorID uint) (int64, error) {
			return 2, nil
		},
		CountByAssigneeFunc: func(ctx context.Context, assigneeID uint) (int64, error) {
			return 5, nil
		},
	}

	uc := NewDeleteUserUseCase(repo, counts, &mockResponsibilityCleaner{}, &fakeTxManager{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteUserCommand{ActorID: 1, UserID: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "7 related tickets")
}

func TestDeleteUser_AdminCannotDeleteAdmin(t *testing.T) {
	admin := mustUser(t, 1, authorization.RoleAdmin, true)
	otherAdmin := mustUser(t, 2, authorization.RoleAdmin, true)

	uc := NewDeleteUserUseCase(userDirectory(admin, otherAdmin), &mockTicketCounts{}, &mockResponsibilityCleaner{}, &fakeTxManager{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteUserCommand{ActorID: 1, UserID: 2})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "superadmin")
}

func TestDeleteUser_CannotDeleteSelf(t *testing.T) {
	super := mustUser(t, 1, authorization.RoleSuperAdmin, true)

	uc := NewDeleteUserUseCase(userDirectory(super), &mockTicketCounts{}, &mockResponsibilityCleaner{}, &fakeTxManager{}, &mockLogger{})
	err := uc.Execute(context.Background(), DeleteUserCommand{ActorID: 1, UserID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "own account")
}
