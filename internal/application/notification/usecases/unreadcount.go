package usecases

import (
	"context"

	"yordam/internal/domain/notification"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
)

type UnreadCountQuery struct {
	UserID uint
}

type UnreadCountResult struct {
	Count int64 `json:"count"`
}

// UnreadCountUseCase serves the badge counter; it is hit on nearly every
// page load, so it stays a single COUNT query.
type UnreadCountUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewUnreadCountUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *UnreadCountUseCase {
	return &UnreadCountUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *UnreadCountUseCase) Execute(ctx context.Context, query UnreadCountQuery) (*UnreadCountResult, error) {
	count, err := uc.notificationRepo.CountUnread(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to count unread notifications")
	}
	return &UnreadCountResult{Count: count}, nil
}
