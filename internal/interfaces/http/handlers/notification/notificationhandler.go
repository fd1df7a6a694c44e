package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yordam/internal/application/notification/usecases"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/errors"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/utils"
)

type NotificationHandler struct {
	listUC        usecases.ListNotificationsExecutor
	markReadUC    usecases.MarkNotificationReadExecutor
	unreadCountUC usecases.UnreadCountExecutor
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC usecases.ListNotificationsExecutor,
	markReadUC usecases.MarkNotificationReadExecutor,
	unreadCountUC usecases.UnreadCountExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		unreadCountUC: unreadCountUC,
		logger:        logger,
	}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	query := usecases.ListNotificationsQuery{
		UserID:     middleware.UserIDFrom(c),
		UnreadOnly: c.Query("unread_only") == "true",
	}
	query.Page, _ = strconv.Atoi(c.Query("page"))
	query.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, result.Page, result.PageSize)
}

// MarkRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid notification id"))
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), usecases.MarkNotificationReadCommand{
		NotificationID: uint(id),
		UserID:         middleware.UserIDFrom(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	result, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{
		UserID: middleware.UserIDFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
