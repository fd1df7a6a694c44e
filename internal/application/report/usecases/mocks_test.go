package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yordam/internal/domain/access"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                func(ctx context.Context, ticketID uint) error
	GetByIDFunc               func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc           func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc                  func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	ListUnassignedFunc        func(ctx context.Context, slots []ticket.QueueSlot, page, pageSize int) ([]*ticket.Ticket, int64, error)
	CountUnassignedFunc       func(ctx context.Context, slots []ticket.QueueSlot) (int64, error)
	CountFunc                 func(ctx context.Context, filter ticket.TicketFilter) (int64, error)
	CountByStatusFunc         func(ctx context.Context, filter ticket.TicketFilter) (map[vo.TicketStatus]int64, error)
	CountBySystemFunc         func(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error)
	CountByRegionFunc         func(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error)
	CountByPriorityFunc       func(ctx context.Context, filter ticket.TicketFilter) (map[vo.Priority]int64, error)
	CountByRatingFunc         func(ctx context.Context, filter ticket.TicketFilter) (map[int]int64, error)
	AverageRatingFunc         func(ctx context.Context, filter ticket.TicketFilter) (float64, error)
	TechnicianPerformanceFunc func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TechnicianStats, error)
	CountByCreatorFunc        func(ctx context.Context, creatorID uint) (int64, error)
	CountByAssigneeFunc       func(ctx context.Context, assigneeID uint) (int64, error)
	CountBySystemIDFunc       func(ctx context.Context, systemID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListUnassigned(ctx context.Context, slots []ticket.QueueSlot, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	if m.ListUnassignedFunc != nil {
		return m.ListUnassignedFunc(ctx, slots, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountUnassigned(ctx context.Context, slots []ticket.QueueSlot) (int64, error) {
	if m.CountUnassignedFunc != nil {
		return m.CountUnassignedFunc(ctx, slots)
	}
	return 0, nil
}

func (m *mockTicketRepository) Count(ctx context.Context, filter ticket.TicketFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, filter ticket.TicketFilter) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountBySystem(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error) {
	if m.CountBySystemFunc != nil {
		return m.CountBySystemFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByRegion(ctx context.Context, filter ticket.TicketFilter) (map[uint]int64, error) {
	if m.CountByRegionFunc != nil {
		return m.CountByRegionFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByPriority(ctx context.Context, filter ticket.TicketFilter) (map[vo.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByRating(ctx context.Context, filter ticket.TicketFilter) (map[int]int64, error) {
	if m.CountByRatingFunc != nil {
		return m.CountByRatingFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) AverageRating(ctx context.Context, filter ticket.TicketFilter) (float64, error) {
	if m.AverageRatingFunc != nil {
		return m.AverageRatingFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockTicketRepository) TechnicianPerformance(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TechnicianStats, error) {
	if m.TechnicianPerformanceFunc != nil {
		return m.TechnicianPerformanceFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	if m.CountByCreatorFunc != nil {
		return m.CountByCreatorFunc(ctx, creatorID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByAssignee(ctx context.Context, assigneeID uint) (int64, error) {
	if m.CountByAssigneeFunc != nil {
		return m.CountByAssigneeFunc(ctx, assigneeID)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountBySystemID(ctx context.Context, systemID uint) (int64, error) {
	if m.CountBySystemIDFunc != nil {
		return m.CountBySystemIDFunc(ctx, systemID)
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
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
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

func adminActor(userID uint) *access.AccessContext {
	return &access.AccessContext{
		UserID:      userID,
		Role:        authorization.RoleAdmin,
		SystemScope: access.ScopeOf(1),
		RegionScope: access.RepublicScope(),
	}
}

func superAdminActor(userID uint) *access.AccessContext {
	return &access.AccessContext{
		UserID:      userID,
		Role:        authorization.RoleSuperAdmin,
		SystemScope: access.UnrestrictedScope(),
		RegionScope: access.UnrestrictedScope(),
	}
}

func mustUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, fmt.Sprintf("User %d", id), fmt.Sprintf("user%d@example.uz", id),
		"hash", role, nil, nil, "uz", true, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}
