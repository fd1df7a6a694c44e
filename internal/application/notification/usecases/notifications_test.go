package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yordam/internal/domain/notification"
)

func TestListNotificationsUseCase_Execute(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		ListByUserFunc: func(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*notification.Notification, int64, error) {
			assert.Equal(t, uint(10), userID)
			assert.True(t, unreadOnly)
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, pageSize)
			return []*notification.Notification{mustNotification(t, 1, 10, false)}, 35, nil
		},
	}

	useCase := NewListNotificationsUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListNotificationsQuery{
		UserID:     10,
		UnreadOnly: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(35), result.Total)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, "/tickets/50/", result.Notifications[0].URL)
	assert.False(t, result.Notifications[0].IsRead)
}

func TestMarkNotificationReadUseCase_Execute_RecipientMarks(t *testing.T) {
	n := mustNotification(t, 1, 10, false)

	var updated *notification.Notification
	mockRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, notificationID uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			updated = n
			return nil
		},
	}

	useCase := NewMarkNotificationReadUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 1, UserID: 10})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsRead())
}

func TestMarkNotificationReadUseCase_Execute_OtherUserForbidden(t *testing.T) {
	n := mustNotification(t, 1, 10, false)

	mockRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, notificationID uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			t.Fatal("update must not run for a foreign notification")
			return nil
		},
	}

	useCase := NewMarkNotificationReadUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 1, UserID: 11})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "another user")
	assert.False(t, n.IsRead())
}

func TestMarkNotificationReadUseCase_Execute_AlreadyReadIsNoop(t *testing.T) {
	n := mustNotification(t, 1, 10, true)

	mockRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, notificationID uint) (*notification.Notification, error) {
			return n, nil
		},
		UpdateFunc: func(ctx context.Context, n *notification.Notification) error {
			t.Fatal("update must not run for an already-read notification")
			return nil
		},
	}

	useCase := NewMarkNotificationReadUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 1, UserID: 10})
	require.NoError(t, err)
}

func TestMarkNotificationReadUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		GetByIDFunc: func(ctx context.Context, notificationID uint) (*notification.Notification, error) {
			return nil, fmt.Errorf("record not found")
		},
	}

	useCase := NewMarkNotificationReadUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), MarkNotificationReadCommand{NotificationID: 99, UserID: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUnreadCountUseCase_Execute(t *testing.T) {
	mockRepo := &mockNotificationRepository{
		CountUnreadFunc: func(ctx context.Context, userID uint) (int64, error) {
			assert.Equal(t, uint(10), userID)
			return 7, nil
		},
	}

	useCase := NewUnreadCountUseCase(mockRepo, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UnreadCountQuery{UserID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Count)
}
