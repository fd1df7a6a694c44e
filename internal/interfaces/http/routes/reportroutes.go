package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "yordam/internal/interfaces/http/handlers/report"
	"yordam/internal/interfaces/http/middleware"
)

type ReportRouteConfig struct {
	ReportHandler  *reporthandlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

func SetupReportRoutes(engine *gin.Engine, config *ReportRouteConfig) {
	reports := engine.Group("/reports")
	reports.Use(config.AuthMiddleware.RequireAuth())
	reports.Use(config.Permission.RequirePermission("report", "read"))
	{
		reports.GET("/statistics", config.ReportHandler.Statistics)
		reports.GET("/performance", config.ReportHandler.Performance)
		// The overview aggregates the whole republic; the use case
		// additionally requires the superadmin role.
		reports.GET("/overview", config.ReportHandler.Overview)
	}

	// The counter strip is per-role and available to everyone.
	engine.GET("/dashboard",
		config.AuthMiddleware.RequireAuth(),
		config.ReportHandler.Dashboard)
}
