package handlers

import (
	"time"

	authusecases "github.com/nexorbs/nexportal/internal/application/auth/usecases"
)

type LoginRequest struct {
	ID          string `json:"id" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// UserResponse is the wire form of a user across auth and user endpoints.
type UserResponse struct {
	ID          string     `json:"id"`
	AccountCode string     `json:"account_code"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CompanyName *string    `json:"company_name,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func newUserResponse(u authusecases.UserInfo) UserResponse {
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

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VerifyTokenResponse struct {
	UserID      string `json:"user_id"`
	AccountCode string `json:"account_code"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}
