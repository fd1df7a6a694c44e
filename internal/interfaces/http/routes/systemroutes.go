package routes

import (
	"github.com/gin-gonic/gin"

	systemhandlers "yordam/internal/interfaces/http/handlers/system"
	"yordam/internal/interfaces/http/middleware"
)

type SystemRouteConfig struct {
	SystemHandler  *systemhandlers.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	systems := engine.Group("/systems")
	systems.Use(config.AuthMiddleware.RequireAuth())
	{
		// The catalog and the responsible lookup back the ticket form,
		// so every authenticated role may read them.
		systems.GET("", config.SystemHandler.ListSystems)
		systems.GET("/:id/responsibles", config.SystemHandler.ListResponsibles)

		systems.POST("",
			config.Permission.RequirePermission("system", "create"),
			config.SystemHandler.CreateSystem)
		systems.DELETE("/:id",
			config.Permission.RequirePermission("system", "delete"),
			config.SystemHandler.DeleteSystem)

		systems.POST("/:id/responsibilities",
			config.Permission.RequirePermission("responsibility", "create"),
			config.SystemHandler.AddResponsibility)
		systems.DELETE("/:id/responsibilities/:respID",
			config.Permission.RequirePermission("responsibility", "delete"),
			config.SystemHandler.RemoveResponsibility)
	}
}
