package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/application/user/usecases"
)

type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

func newUserSummaryResponse(u usecases.UserSummary) UserResponse {
	return UserResponse{
		ID:          u.ID,
		AccountCode: u.AccountCode,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CompanyName: u.CompanyName,
		Phone:       u.Phone,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}

// parsePageQuery reads page/limit query parameters; zero values let the use
// case apply its defaults.
func parsePageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	return page, limit
}

// queryPtr returns the query parameter as a pointer, nil when absent.
func queryPtr(c *gin.Context, name string) *string {
	if value, ok := c.GetQuery(name); ok && value != "" {
		return &value
	}
	return nil
}

func queryBoolPtr(c *gin.Context, name string) *bool {
	if value, ok := c.GetQuery(name); ok && value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return &parsed
		}
	}
	return nil
}
