package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "yordam/internal/interfaces/http/handlers/notification"
	"yordam/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Permission          *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("",
			config.Permission.RequirePermission("notification", "read"),
			config.NotificationHandler.List)
		notifications.GET("/unread-count",
			config.Permission.RequirePermission("notification", "read"),
			config.NotificationHandler.UnreadCount)
		notifications.PATCH("/:id/read",
			config.Permission.RequirePermission("notification", "update"),
			config.NotificationHandler.MarkRead)
	}
}
