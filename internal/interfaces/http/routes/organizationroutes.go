package routes

import (
	"github.com/gin-gonic/gin"

	organizationhandlers "yordam/internal/interfaces/http/handlers/organization"
	"yordam/internal/interfaces/http/middleware"
)

type OrganizationRouteConfig struct {
	OrganizationHandler *organizationhandlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Permission          *middleware.PermissionMiddleware
}

func SetupOrganizationRoutes(engine *gin.Engine, config *OrganizationRouteConfig) {
	regions := engine.Group("/regions")
	regions.Use(config.AuthMiddleware.RequireAuth())
	{
		regions.GET("", config.OrganizationHandler.ListRegions)
	}

	departments := engine.Group("/departments")
	departments.Use(config.AuthMiddleware.RequireAuth())
	{
		departments.GET("", config.OrganizationHandler.ListDepartments)

		departments.POST("",
			config.Permission.RequirePermission("region", "create"),
			config.OrganizationHandler.CreateDepartment)
		departments.PATCH("/:id/active",
			config.Permission.RequirePermission("region", "update"),
			config.OrganizationHandler.ToggleDepartment)
		departments.DELETE("/:id",
			config.Permission.RequirePermission("region", "delete"),
			config.OrganizationHandler.DeleteDepartment)
	}
}
