package middleware

import (
	"github.com/craftline/contentflow-api/internal/constants"
	apierrors "github.com/craftline/contentflow-api/internal/errors"
	"github.com/gin-gonic/gin"
)

// RequireActor reads the acting identity from the X-Actor-Email header and
// stores it in the request context. This is identity plumbing for createdBy
// stamps and assignee-scoped listings, not an authentication layer.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor-Email")
		if actor == "" {
			apierrors.Unauthorized(c, "X-Actor-Email header required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorEmail, actor)
		c.Next()
	}
}

// GetActorEmail retrieves the acting identity from context
func GetActorEmail(c *gin.Context) (string, bool) {
	actor, exists := c.Get(constants.ContextKeyActorEmail)
	if !exists {
		return "", false
	}
	email, ok := actor.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
