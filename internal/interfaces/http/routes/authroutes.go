package routes

import (
	"github.com/gin-gonic/gin"

	"yordam/internal/infrastructure/ratelimit"
	authhandlers "yordam/internal/interfaces/http/handlers/auth"
	"yordam/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *authhandlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login",
			config.RateLimit.PerIP("login", ratelimit.LoginLimit()),
			config.AuthHandler.Login)
		auth.POST("/refresh",
			config.AuthHandler.Refresh)
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Me)
	}
}
