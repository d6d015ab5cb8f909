package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nexorbs/nexportal/internal/domain/access"
	"github.com/nexorbs/nexportal/internal/shared/authorization"
	"github.com/nexorbs/nexportal/internal/shared/constants"
)

// actorFromContext rebuilds the policy actor from the claims the auth
// middleware stored. Routes without RequireAuth yield a zero actor, which
// every policy check denies.
func actorFromContext(c *gin.Context) access.Actor {
	return access.Actor{
		ID:   c.GetString(constants.ContextKeyUserID),
		Role: authorization.Role(c.GetString(constants.ContextKeyUserRole)),
	}
}
