package usecases

import (
	"context"
	"fmt"

	"yordam/internal/domain/notification"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	UserID         uint
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) error {
	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("notification %d not found", cmd.NotificationID))
	}

	// Only the recipient may touch their own notifications.
	if n.UserID() != cmd.UserID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	if n.IsRead() {
		return nil
	}

	n.MarkAsRead()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification as read",
			"notification_id", cmd.NotificationID, "error", err)
		return errors.NewInternalError("failed to mark notification as read")
	}
	return nil
}
