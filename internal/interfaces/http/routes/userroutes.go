package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/interfaces/http/handlers"
	"github.com/nexorbs/nexportal/internal/interfaces/http/middleware"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes wires the user management routes. The use cases gate on
// the admin role again; the route-level check just fails fast.
func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("", config.UserHandler.ListUsers)
		users.PUT("/:id", config.UserHandler.UpdateUser)
	}
}
