package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, n *Notification) error
	SaveAll(ctx context.Context, ns []*Notification) error
	Update(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, notificationID uint) (*Notification, error)
	ListByUser(ctx context.Context, userID uint, unreadOnly bool, page, pageSize int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
}
