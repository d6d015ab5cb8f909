package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "github.com/nexorbs/nexportal/internal/application/auth/usecases"
	"github.com/nexorbs/nexportal/internal/application/user/usecases"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type UserHandler struct {
	registerUC *authusecases.RegisterUserUseCase
	listUC     *usecases.ListUsersUseCase
	updateUC   *usecases.UpdateUserUseCase
	logger     logger.Interface
}

func NewUserHandler(
	registerUC *authusecases.RegisterUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		listUC:     listUC,
		updateUC:   updateUC,
		logger:     logger,
	}
}

// CreateUser handles POST /users. Same operation as POST /auth/register.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "display_name, email, password and role are required")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), authusecases.RegisterUserCommand{
		Actor:       actorFromContext(c),
		DisplayName: sanitize(req.DisplayName),
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		CompanyName: sanitizePtr(req.CompanyName),
		Phone:       req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "user created", newUserResponse(result.User))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePageQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Actor:    actorFromContext(c),
		Role:     queryPtr(c, "role"),
		IsActive: queryBoolPtr(c, "is_active"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	users := make([]UserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, newUserSummaryResponse(u))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"users":      users,
		"pagination": result.Pagination,
	})
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:       actorFromContext(c),
		UserID:      c.Param("id"),
		DisplayName: sanitizePtr(req.DisplayName),
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		IsActive:    req.IsActive,
		CompanyName: sanitizePtr(req.CompanyName),
		Phone:       req.Phone,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated", newUserSummaryResponse(result.User))
}
