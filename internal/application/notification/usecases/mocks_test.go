package usecases

import (
	"context"
	"testing"
	"time"

	"yordam/internal/domain/notification"
	"yordam/internal/shared/logger"
)

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

func mustNotification(t *testing.T, id, userID uint, isRead bool) *notification.Notification {
	t.Helper()
	n, err := notification.ReconstructNotification(
		id, userID, notification.TypeStatusChanged,
		"Murojaat holati o'zgardi", "Printer offline", notification.TicketURL(50),
		isRead, time.Now(),
	)
	if err != nil {
		t.Fatalf("reconstruct notification: %v", err)
	}
	return n
}
