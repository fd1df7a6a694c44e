package usecases

import (
	"context"
	"time"

	"yordam/internal/domain/notification"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type ListNotificationsQuery struct {
	UserID     uint
	UnreadOnly bool
	Page       int
	PageSize   int
}

type NotificationDTO struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	URL       string    `json:"url"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []*NotificationDTO
	Total         int64
	Page          int
	PageSize      int
	TotalPages    int
}

type ListNotificationsUseCase struct {
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.NotificationRepository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	items, total, err := uc.notificationRepo.ListByUser(ctx, query.UserID, query.UnreadOnly, p.Page, p.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]*NotificationDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, fromNotification(n))
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalPages:    utils.TotalPages(total, p.PageSize),
	}, nil
}

func fromNotification(n *notification.Notification) *NotificationDTO {
	return &NotificationDTO{
		ID:        n.ID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Text:      n.Text(),
		URL:       n.URL(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}
