package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationUC "yordam/internal/application/notification/usecases"
	organizationUC "yordam/internal/application/organization/usecases"
	reportUC "yordam/internal/application/report/usecases"
	systemUC "yordam/internal/application/system/usecases"
	ticketUC "yordam/internal/application/ticket/usecases"
	userUC "yordam/internal/application/user/usecases"
	"yordam/internal/domain/access"
	"yordam/internal/domain/routing"
	"yordam/internal/infrastructure/auth"
	"yordam/internal/infrastructure/config"
	"yordam/internal/infrastructure/email"
	"yordam/internal/infrastructure/permission"
	"yordam/internal/infrastructure/ratelimit"
	"yordam/internal/infrastructure/repository"
	authhandlers "yordam/internal/interfaces/http/handlers/auth"
	notificationhandlers "yordam/internal/interfaces/http/handlers/notification"
	organizationhandlers "yordam/internal/interfaces/http/handlers/organization"
	reporthandlers "yordam/internal/interfaces/http/handlers/report"
	systemhandlers "yordam/internal/interfaces/http/handlers/system"
	tickethandlers "yordam/internal/interfaces/http/handlers/ticket"
	userhandlers "yordam/internal/interfaces/http/handlers/user"
	"yordam/internal/interfaces/http/middleware"
	sharedDB "yordam/internal/shared/db"
	"yordam/internal/shared/logger"
	"yordam/internal/shared/services/markdown"
)

// Container wires repositories, services, use cases, handlers and
// middleware into one graph. Construction order follows dependency
// order; nothing here does I/O beyond the policy seed.
type Container struct {
	AuthHandler         *authhandlers.AuthHandler
	UserHandler         *userhandlers.UserHandler
	TicketHandler       *tickethandlers.TicketHandler
	NotificationHandler *notificationhandlers.NotificationHandler
	SystemHandler       *systemhandlers.SystemHandler
	OrganizationHandler *organizationhandlers.OrganizationHandler
	ReportHandler       *reporthandlers.ReportHandler

	AuthMiddleware *middleware.AuthMiddleware
	Permission     *middleware.PermissionMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	// Repositories.
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	respRepo := repository.NewResponsibilityRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)

	// Infrastructure services.
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	txManager := sharedDB.NewTransactionManager(db)
	markdownSvc := markdown.NewMarkdownService()

	var mailer ticketUC.Mailer
	if cfg.Email.Enabled {
		mailer = email.NewSMTPMailer(cfg.Email)
	} else {
		mailer = email.NewNoopMailer()
	}

	var limiter ratelimit.RateLimiter
	if cfg.Redis.Enabled {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}
	if err := permission.SeedHelpdeskPolicies(enforcer, log); err != nil {
		return nil, fmt.Errorf("failed to seed policies: %w", err)
	}

	// Domain services.
	resolver := access.NewResolver(respRepo)
	router := routing.NewRouter(respRepo)
	notifier := ticketUC.NewTicketNotifier(userRepo, notificationRepo, mailer, log)

	reopenWindow := time.Duration(cfg.Ticket.ReopenWindowDays) * 24 * time.Hour

	// Use cases.
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	refreshUC := userUC.NewRefreshTokenUseCase(userRepo, jwtService, log)
	getProfileUC := userUC.NewGetProfileUseCase(userRepo, respRepo, systemRepo, log)
	createUserUC := userUC.NewCreateUserUseCase(userRepo, hasher, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	changeRoleUC := userUC.NewChangeUserRoleUseCase(userRepo, log)
	toggleActiveUC := userUC.NewToggleUserActiveUseCase(userRepo, log)
	resetPasswordUC := userUC.NewResetPasswordUseCase(userRepo, hasher, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, ticketRepo, respRepo, txManager, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, historyRepo, userRepo, systemRepo, router, notifier, txManager, markdownSvc, log)
	changeStatusUC := ticketUC.NewChangeStatusUseCase(ticketRepo, historyRepo, notifier, txManager, log)
	assignTicketUC := ticketUC.NewAssignTicketUseCase(ticketRepo, historyRepo, userRepo, respRepo, notifier, txManager, log)
	takeTicketUC := ticketUC.NewTakeTicketUseCase(ticketRepo, historyRepo, userRepo, router, notifier, txManager, log)
	rateTicketUC := ticketUC.NewRateTicketUseCase(ticketRepo, historyRepo, notifier, txManager, cfg.Ticket.RatingThreshold, log)
	reopenTicketUC := ticketUC.NewReopenTicketUseCase(ticketRepo, historyRepo, notifier, txManager, reopenWindow, log)
	sendMessageUC := ticketUC.NewSendMessageUseCase(ticketRepo, messageRepo, historyRepo, notifier, txManager, markdownSvc, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, messageRepo, historyRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	listUnassignedUC := ticketUC.NewListUnassignedUseCase(ticketRepo, userRepo, router, log)
	quickStatsUC := ticketUC.NewQuickStatsUseCase(ticketRepo, userRepo, router, log)

	listNotificationsUC := notificationUC.NewListNotificationsUseCase(notificationRepo, log)
	markReadUC := notificationUC.NewMarkNotificationReadUseCase(notificationRepo, log)
	unreadCountUC := notificationUC.NewUnreadCountUseCase(notificationRepo, log)

	createSystemUC := systemUC.NewCreateSystemUseCase(systemRepo, log)
	listSystemsUC := systemUC.NewListSystemsUseCase(systemRepo, log)
	deleteSystemUC := systemUC.NewDeleteSystemUseCase(systemRepo, respRepo, ticketRepo, txManager, log)
	addRespUC := systemUC.NewAddResponsibilityUseCase(systemRepo, respRepo, userRepo, log)
	removeRespUC := systemUC.NewRemoveResponsibilityUseCase(respRepo, log)
	listResponsiblesUC := systemUC.NewListResponsiblesUseCase(respRepo, userRepo, log)

	listRegionsUC := organizationUC.NewListRegionsUseCase(regionRepo, log)
	createDeptUC := organizationUC.NewCreateDepartmentUseCase(regionRepo, departmentRepo, log)
	toggleDeptUC := organizationUC.NewToggleDepartmentUseCase(departmentRepo, log)
	deleteDeptUC := organizationUC.NewDeleteDepartmentUseCase(departmentRepo, userRepo, log)
	listDepartmentsUC := organizationUC.NewListDepartmentsUseCase(departmentRepo, log)

	statisticsUC := reportUC.NewStatisticsReportUseCase(ticketRepo, log)
	performanceUC := reportUC.NewTechnicianPerformanceUseCase(ticketRepo, userRepo, log)
	overviewUC := reportUC.NewOverviewUseCase(ticketRepo, userRepo, log)
	dashboardUC := reportUC.NewDashboardUseCase(ticketRepo, log)

	return &Container{
		AuthHandler:         authhandlers.NewAuthHandler(loginUC, refreshUC, getProfileUC, log),
		UserHandler:         userhandlers.NewUserHandler(createUserUC, listUsersUC, changeRoleUC, toggleActiveUC, resetPasswordUC, deleteUserUC, log),
		TicketHandler:       tickethandlers.NewTicketHandler(createTicketUC, changeStatusUC, assignTicketUC, takeTicketUC, rateTicketUC, reopenTicketUC, sendMessageUC, getTicketUC, listTicketsUC, listUnassignedUC, quickStatsUC, log),
		NotificationHandler: notificationhandlers.NewNotificationHandler(listNotificationsUC, markReadUC, unreadCountUC, log),
		SystemHandler:       systemhandlers.NewSystemHandler(createSystemUC, listSystemsUC, deleteSystemUC, addRespUC, removeRespUC, listResponsiblesUC, log),
		OrganizationHandler: organizationhandlers.NewOrganizationHandler(listRegionsUC, createDeptUC, toggleDeptUC, deleteDeptUC, listDepartmentsUC, log),
		ReportHandler:       reporthandlers.NewReportHandler(statisticsUC, performanceUC, overviewUC, dashboardUC, log),

		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, userRepo, resolver, log),
		Permission:     middleware.NewPermissionMiddleware(enforcer, log),
		RateLimit:      middleware.NewRateLimitMiddleware(limiter, log),
	}, nil
}
