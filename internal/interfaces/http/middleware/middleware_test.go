package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexorbs/nexportal/internal/domain/user"
	"github.com/nexorbs/nexportal/internal/infrastructure/auth"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/constants"
	"github.com/nexorbs/nexportal/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testToken(t *testing.T, svc *auth.JWTService, role authorization.Role) string {
	t.Helper()
	u, err := user.ReconstructUser(
		"3f9a0c71d2e845bb", "admin-3f9a0c71", "Test Admin", "admin@example.com",
		"hash", role, true, nil, nil, nil, time.Now(), time.Now(),
	)
	require.NoError(t, err)

	token, err := svc.Generate(u)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 1)
	mw := NewAuthMiddleware(svc, logger.NewLogger())

	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + testToken(t, svc, authorization.RoleAdmin), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	signer := auth.NewJWTService("secret-a", 1)
	verifier := auth.NewJWTService("secret-b", 1)
	mw := NewAuthMiddleware(verifier, logger.NewLogger())

	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, signer, authorization.RoleAdmin))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 1)
	mw := NewAuthMiddleware(svc, logger.NewLogger())

	engine := gin.New()
	engine.GET("/admin", mw.RequireAuth(), authorization.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		role       authorization.Role
		wantStatus int
	}{
		{name: "admin passes", role: authorization.RoleAdmin, wantStatus: http.StatusOK},
		{name: "client denied", role: authorization.RoleClient, wantStatus: http.StatusForbidden},
		{name: "developer denied", role: authorization.RoleDeveloper, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+testToken(t, svc, tt.role))
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://portal.example.com"}))
	engine.POST("/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://portal.example.com"}))
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	// Request goes through; the missing header makes the browser block it.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Wildcard(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"*"}))
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
