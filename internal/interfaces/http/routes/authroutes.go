package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/interfaces/http/handlers"
	"github.com/nexorbs/nexportal/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimitMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		login := []gin.HandlerFunc{config.AuthHandler.Login}
		register := []gin.HandlerFunc{config.AuthMiddleware.RequireAuth(), config.AuthHandler.Register}
		if config.RateLimit != nil {
			login = append([]gin.HandlerFunc{config.RateLimit.Limit()}, login...)
			register = append([]gin.HandlerFunc{config.RateLimit.Limit()}, register...)
		}

		auth.POST("/login", login...)
		auth.POST("/register", register...)
		auth.POST("/verify", config.AuthHandler.Verify)
	}
}
