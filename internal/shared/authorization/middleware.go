package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/shared/constants"
)

// RequireAdmin aborts the request with 403 unless the authenticated user
// carries the admin role. Must run after the auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "admin access required",
			})
			return
		}
		c.Next()
	}
}
