// Package http wires the gin engine: repositories, use cases, handlers,
// middleware and routes.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "github.com/nexorbs/nexportal/internal/application/auth/usecases"
	projectusecases "github.com/nexorbs/nexportal/internal/application/project/usecases"
	ticketusecases "github.com/nexorbs/nexportal/internal/application/ticket/usecases"
	userusecases "github.com/nexorbs/nexportal/internal/application/user/usecases"
	"github.com/nexorbs/nexportal/internal/infrastructure/auth"
	"github.com/nexorbs/nexportal/internal/infrastructure/config"
	"github.com/nexorbs/nexportal/internal/infrastructure/ratelimit"
	"github.com/nexorbs/nexportal/internal/infrastructure/repository"
	"github.com/nexorbs/nexportal/internal/interfaces/http/handlers"
	"github.com/nexorbs/nexportal/internal/interfaces/http/middleware"
	"github.com/nexorbs/nexportal/internal/interfaces/http/routes"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	projectHandler *handlers.ProjectHandler
	ticketHandler  *handlers.TicketHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
	cfg            *config.Config
	logger         logger.Interface
}

// NewRouter builds the full dependency graph. redisClient may be nil; rate
// limiting is then disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	projectRepo := repository.NewProjectRepository(db, log)
	ticketRepo := repository.NewTicketRepository(db, log)
	auditSink := repository.NewAuditRepository(db, log)
	sequences := repository.NewSequenceRepository(db, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryHours)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	loginUC := authusecases.NewLoginUseCase(userRepo, jwtService, hasher, log)
	registerUC := authusecases.NewRegisterUserUseCase(userRepo, hasher, auditSink, log)
	verifyUC := authusecases.NewVerifyTokenUseCase(jwtService, log)

	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, auditSink, log)

	createProjectUC := projectusecases.NewCreateProjectUseCase(projectRepo, userRepo, sequences, auditSink, log)
	getProjectUC := projectusecases.NewGetProjectUseCase(projectRepo, log)
	listProjectsUC := projectusecases.NewListProjectsUseCase(projectRepo, log)
	updateProjectUC := projectusecases.NewUpdateProjectUseCase(projectRepo, userRepo, auditSink, log)
	deleteProjectUC := projectusecases.NewDeleteProjectUseCase(projectRepo, auditSink, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, projectRepo, sequences, auditSink, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, userRepo, auditSink, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, auditSink, log)

	var rateLimitMW *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisLimiter(redisClient, ratelimit.Options{
			Limit:  cfg.RateLimit.Limit,
			Window: time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		})
		rateLimitMW = middleware.NewRateLimitMiddleware(limiter, log)
	}

	return &Router{
		engine:         engine,
		authHandler:    handlers.NewAuthHandler(loginUC, registerUC, verifyUC, log),
		userHandler:    handlers.NewUserHandler(registerUC, listUsersUC, updateUserUC, log),
		projectHandler: handlers.NewProjectHandler(createProjectUC, getProjectUC, listProjectsUC, updateProjectUC, deleteProjectUC, log),
		ticketHandler:  handlers.NewTicketHandler(createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, addCommentUC, log),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		rateLimit:      rateLimitMW,
		cfg:            cfg,
		logger:         log,
	}
}

// SetupRoutes installs the global middleware chain and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimit:      r.rateLimit,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{
		ProjectHandler: r.projectHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
