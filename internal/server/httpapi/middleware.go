package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/server/models"
)

// Context keys for data the auth middleware stores in gin.Context.
const (
	keyUserID = "pf_user_id"
	keyRole   = "pf_role"
)

// Auth returns middleware that verifies the bearer token and loads the
// current user. Responds with 401 if the token is missing, invalid, or
// expired.
func (a *API) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		user, err := a.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		c.Set(keyUserID, user.ID)
		c.Set(keyRole, user.Role)
		c.Next()
	}
}

// RequireRoles returns middleware that denies the request unless the
// authenticated user's role is in the allowed set. Must run after Auth.
func (a *API) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := currentRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func currentUserID(c *gin.Context) string {
	return c.GetString(keyUserID)
}

func currentRole(c *gin.Context) (models.Role, bool) {
	v, ok := c.Get(keyRole)
	if !ok {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
