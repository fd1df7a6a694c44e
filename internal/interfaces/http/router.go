package http

import (
	"github.com/gin-gonic/gin"

	"yordam/internal/infrastructure/config"
	"yordam/internal/interfaces/http/middleware"
	"yordam/internal/interfaces/http/routes"
	"yordam/internal/shared/logger"
)

// Router owns the gin engine and registers all route groups.
type Router struct {
	engine    *gin.Engine
	container *Container
	config    *config.Config
	logger    logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	return &Router{
		engine:    engine,
		container: container,
		config:    cfg,
		logger:    log,
	}
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.container.AuthHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		RateLimit:      r.container.RateLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.container.TicketHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		Permission:     r.container.Permission,
		RateLimit:      r.container.RateLimit,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.container.UserHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		Permission:     r.container.Permission,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler: r.container.NotificationHandler,
		AuthMiddleware:      r.container.AuthMiddleware,
		Permission:          r.container.Permission,
	})

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler:  r.container.SystemHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		Permission:     r.container.Permission,
	})

	routes.SetupOrganizationRoutes(r.engine, &routes.OrganizationRouteConfig{
		OrganizationHandler: r.container.OrganizationHandler,
		AuthMiddleware:      r.container.AuthMiddleware,
		Permission:          r.container.Permission,
	})

	routes.SetupReportRoutes(r.engine, &routes.ReportRouteConfig{
		ReportHandler:  r.container.ReportHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		Permission:     r.container.Permission,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
