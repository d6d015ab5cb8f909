package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/interfaces/http/handlers"
	"github.com/nexorbs/nexportal/internal/interfaces/http/middleware"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
)

type ProjectRouteConfig struct {
	ProjectHandler *handlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.GET("/:id", config.ProjectHandler.GetProject)

		// Mutations are admin only; the policy denies them again in-usecase.
		projects.POST("", authorization.RequireAdmin(), config.ProjectHandler.CreateProject)
		projects.PUT("/:id", authorization.RequireAdmin(), config.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", authorization.RequireAdmin(), config.ProjectHandler.DeleteProject)
	}
}
