package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/application/ticket/usecases"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type TicketHandler struct {
	createUC     *usecases.CreateTicketUseCase
	getUC        *usecases.GetTicketUseCase
	listUC       *usecases.ListTicketsUseCase
	updateUC     *usecases.UpdateTicketUseCase
	addCommentUC *usecases.AddCommentUseCase
	logger       logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		addCommentUC: addCommentUC,
		logger:       logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id, title and category are required")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actorFromContext(c),
		ProjectID:   req.ProjectID,
		Title:       sanitize(req.Title),
		Description: sanitizePtr(req.Description),
		Priority:    req.Priority,
		Category:    req.Category,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "ticket created", newTicketResponse(result.Ticket))
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketCommand{
		Actor:    actorFromContext(c),
		TicketID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments := make([]CommentResponse, 0, len(result.Comments))
	for _, cm := range result.Comments {
		comments = append(comments, newCommentResponse(cm))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"ticket":   newTicketResponse(result.Ticket),
		"comments": comments,
	})
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, limit := parsePageQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		Actor:      actorFromContext(c),
		Status:     queryPtr(c, "status"),
		Priority:   queryPtr(c, "priority"),
		Category:   queryPtr(c, "category"),
		ProjectID:  queryPtr(c, "project_id"),
		ClientID:   queryPtr(c, "client_id"),
		AssignedTo: queryPtr(c, "assigned_to"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	tickets := make([]TicketResponse, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, newTicketResponse(t))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tickets":    tickets,
		"pagination": result.Pagination,
	})
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:               actorFromContext(c),
		TicketID:            c.Param("id"),
		Title:               sanitizePtr(req.Title),
		Description:         sanitizePtr(req.Description),
		Priority:            req.Priority,
		Category:            req.Category,
		Status:              req.Status,
		SetAssignee:         req.AssignedDeveloperID.Set,
		AssignedDeveloperID: req.AssignedDeveloperID.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", newTicketResponse(result.Ticket))
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "content is required")
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    actorFromContext(c),
		TicketID: c.Param("id"),
		Content:  sanitize(req.Content),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "comment added", newCommentResponse(result.Comment))
}
