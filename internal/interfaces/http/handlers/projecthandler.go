package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/application/project/usecases"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type ProjectHandler struct {
	createUC *usecases.CreateProjectUseCase
	getUC    *usecases.GetProjectUseCase
	listUC   *usecases.ListProjectsUseCase
	updateUC *usecases.UpdateProjectUseCase
	deleteUC *usecases.DeleteProjectUseCase
	logger   logger.Interface
}

func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	getUC *usecases.GetProjectUseCase,
	listUC *usecases.ListProjectsUseCase,
	updateUC *usecases.UpdateProjectUseCase,
	deleteUC *usecases.DeleteProjectUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "client_id, name and type are required")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Actor:             actorFromContext(c),
		ClientID:          req.ClientID,
		Name:              sanitize(req.Name),
		Description:       sanitizePtr(req.Description),
		ProjectType:       req.Type,
		EstimatedBudget:   req.EstimatedBudget,
		EstimatedDuration: req.EstimatedDuration,
		StartDate:         req.StartDate,
		Deadline:          req.Deadline,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "project created", newProjectResponse(result.Project))
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProjectCommand{
		Actor:     actorFromContext(c),
		ProjectID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", newProjectResponse(result.Project))
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	page, limit := parsePageQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProjectsCommand{
		Actor:    actorFromContext(c),
		Status:   queryPtr(c, "status"),
		Type:     queryPtr(c, "type"),
		ClientID: queryPtr(c, "client_id"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projects := make([]ProjectResponse, 0, len(result.Projects))
	for _, p := range result.Projects {
		projects = append(projects, newProjectResponse(p))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"projects":   projects,
		"pagination": result.Pagination,
	})
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		Actor:             actorFromContext(c),
		ProjectID:         c.Param("id"),
		Name:              sanitizePtr(req.Name),
		Description:       sanitizePtr(req.Description),
		ProjectType:       req.Type,
		Status:            req.Status,
		ClientID:          req.ClientID,
		EstimatedBudget:   req.EstimatedBudget,
		EstimatedDuration: req.EstimatedDuration,
		StartDate:         req.StartDate,
		Deadline:          req.Deadline,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project updated", newProjectResponse(result.Project))
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		Actor:     actorFromContext(c),
		ProjectID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project deleted", nil)
}
