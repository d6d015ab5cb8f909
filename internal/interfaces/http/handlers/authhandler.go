package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/application/auth/usecases"
	"github.com/nexorbs/nexportal/internal/shared/logger"
	"github.com/nexorbs/nexportal/internal/shared/utils"
)

type AuthHandler struct {
	loginUC    *usecases.LoginUseCase
	registerUC *usecases.RegisterUserUseCase
	verifyUC   *usecases.VerifyTokenUseCase
	logger     logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	registerUC *usecases.RegisterUserUseCase,
	verifyUC *usecases.VerifyTokenUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		registerUC: registerUC,
		verifyUC:   verifyUC,
		logger:     logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "id, display_name and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		UserID:      req.ID,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", LoginResponse{
		Token: result.Token,
		User:  newUserResponse(result.User),
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "display_name, email, password and role are required")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
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

	utils.CreatedResponse(c, "user registered", newUserResponse(result.User))
}

// Verify handles POST /auth/verify. The token may come in the body or as a
// bearer header.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyTokenRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Token
	if token == "" {
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), usecases.VerifyTokenCommand{Token: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token valid", VerifyTokenResponse{
		UserID:      result.UserID,
		AccountCode: result.AccountCode,
		DisplayName: result.DisplayName,
		Email:       result.Email,
		Role:        result.Role,
	})
}
