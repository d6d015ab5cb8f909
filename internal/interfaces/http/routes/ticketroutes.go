package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/interfaces/http/handlers"
	"github.com/nexorbs/nexportal/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		// Specific paths before the parameterized ones.
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PUT("/:id", config.TicketHandler.UpdateTicket)
	}
}
