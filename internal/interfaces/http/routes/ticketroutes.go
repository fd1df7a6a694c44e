package routes

import (
	"github.com/gin-gonic/gin"

	"yordam/internal/infrastructure/ratelimit"
	tickethandlers "yordam/internal/interfaces/http/handlers/ticket"
	"yordam/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Specific paths are registered before parameterized ones so
		// /queue and /stats never match /:id.
		tickets.POST("",
			config.Permission.RequirePermission("ticket", "create"),
			config.RateLimit.PerUser("ticket_create", ratelimit.TicketCreateLimit()),
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.Permission.RequirePermission("ticket", "read"),
			config.TicketHandler.ListTickets)
		tickets.GET("/queue",
			config.Permission.RequirePermission("ticket", "take"),
			config.TicketHandler.ListUnassigned)
		tickets.GET("/stats",
			config.TicketHandler.QuickStats)

		tickets.PATCH("/:id/status",
			config.Permission.RequirePermission("ticket", "update"),
			config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/assign",
			config.Permission.RequirePermission("ticket", "assign"),
			config.TicketHandler.AssignTicket)
		tickets.POST("/:id/take",
			config.Permission.RequirePermission("ticket", "take"),
			config.TicketHandler.TakeTicket)
		tickets.POST("/:id/rate",
			config.Permission.RequirePermission("ticket", "rate"),
			config.TicketHandler.RateTicket)
		tickets.POST("/:id/reopen",
			config.Permission.RequirePermission("ticket", "reopen"),
			config.TicketHandler.ReopenTicket)
		tickets.POST("/:id/messages",
			config.Permission.RequirePermission("ticket_message", "create"),
			config.TicketHandler.SendMessage)

		tickets.GET("/:id",
			config.Permission.RequirePermission("ticket", "read"),
			config.TicketHandler.GetTicket)
	}
}
