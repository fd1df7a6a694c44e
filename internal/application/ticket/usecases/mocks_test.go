package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"yordam/internal/domain/notification"
	"yordam/internal/domain/system"
	"yordam/internal/domain/ticket"
	vo "yordam/internal/domain/ticket/valueobjects"
	"yordam/internal/domain/user"
	"yordam/internal/shared/authorization"
	"yordam/internal/shared/i18n"
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

type mockMessageRepository struct {
	SaveFunc         func(ctx context.Context, m *ticket.Message) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockHistoryRepository struct {
	SaveFunc          func(ctx context.Context, h *ticket.HistoryEntry) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error)
	CountByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, h *ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.HistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketFunc != nil {
		return m.CountByTicketFunc(ctx, ticketID)
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
	return nil, nil
}

func (m *mockSystemRepository) GetByName(ctx context.Context, name string) (*system.System, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
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
	return nil, nil
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

type mockNotificationRepository struct {
	SaveFunc        func(ctx context.Context, n *notification.Notification) error
	SaveAllFunc     func(ctx context.Context, ns []*notification.Notification) error
	UpdateFunc      func(ctx context.Context, n *notification.Notification) error
	GetByIDFunc     func(ctx context.Context, notificationID uint) (*notification.Notification, error)
	ListByUserFunc  func(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error)
	CountUnreadFunc func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) SaveAll(ctx context.Context, ns []*notification.Notification) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, ns)
	}
	return nil
}

func (m *mockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByID(ctx context.Context, notificationID uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, notificationID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, unreadOnly, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockNotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

type mockMailer struct {
	SendNotificationFunc func(to string, lang i18n.Lang, n *notification.Notification) error
}

func (m *mockMailer) SendNotification(to string, lang i18n.Lang, n *notification.Notification) error {
	if m.SendNotificationFunc != nil {
		return m.SendNotificationFunc(to, lang, n)
	}
	return nil
}

// fakeTxManager runs the transactional closure directly, without a
// database underneath.
type fakeTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunFunc != nil {
		return f.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockMarkdownService struct {
	ToHTMLFunc   func(markdown string) (string, error)
	SanitizeFunc func(htmlContent string) string
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return markdown, nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return m.Sanitize(markdown), nil
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

// Fixture helpers. IDs are deliberately small and stable so assertions
// can name them directly.

func mustUser(t *testing.T, id uint, role authorization.UserRole, regionID *uint) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "Test User", "user@example.uz", "hash", role,
		regionID, nil, "uz", true, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct user: %v", err)
	}
	return u
}

func mustTicket(t *testing.T, id uint, status vo.TicketStatus, creatorID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(
		id, "HD-250801-0001", "Printer offline", "The department printer stopped responding",
		1, 3, creatorID, assigneeID,
		vo.PriorityMedium, status,
		nil, "", nil, nil, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct ticket: %v", err)
	}
	return tkt
}

func mustSystem(t *testing.T, id uint, isActive bool) *system.System {
	t.Helper()
	s, err := system.ReconstructSystem(id, "E-Qabul", "admissions portal", isActive, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("reconstruct system: %v", err)
	}
	return s
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

// noopNotifier swallows every fan-out: its user lookup fails, so no
// notification rows or mails are ever produced.
func noopNotifier() *TicketNotifier {
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return nil, fmt.Errorf("user %d not found", userID)
		},
	}
	return NewTicketNotifier(users, &mockNotificationRepository{}, &mockMailer{}, &mockLogger{})
}
