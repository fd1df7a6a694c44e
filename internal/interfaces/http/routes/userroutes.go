package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "yordam/internal/interfaces/http/handlers/user"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/shared/constants"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
}

// SetupUserRoutes registers the account directory. The role gate here
// is coarse; the use cases enforce the finer rules, such as admin
// accounts being managed by the superadmin only.
func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	users.Use(config.Permission.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.PATCH("/:id/role", config.UserHandler.ChangeRole)
		users.PATCH("/:id/active", config.UserHandler.ToggleActive)
		users.POST("/:id/reset-password", config.UserHandler.ResetPassword)
		users.DELETE("/:id", config.UserHandler.DeleteUser)
	}
}
