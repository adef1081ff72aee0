// README: Bearer-token auth middleware; verified claims land on the gin context.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lodhi/internal/infra"
	"lodhi/internal/types"
)

const (
	ctxUserID = "auth.userID"
	ctxRole   = "auth.role"
)

// Verifier verifies a raw token string and returns its claims.
type Verifier interface {
	Verify(token string) (infra.Claims, error)
}

func Auth(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}
		claims, err := verifier.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// CallerID returns the authenticated user ID, or "" outside Auth.
func CallerID(c *gin.Context) types.ID {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(types.ID); ok {
			return id
		}
	}
	return ""
}

// CallerRole returns the authenticated role claim, or "" outside Auth.
func CallerRole(c *gin.Context) string {
	if v, ok := c.Get(ctxRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
