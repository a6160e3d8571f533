package middleware

import (
	"net/http"
	"strings"

	"jybooking/internal/domain"
	jwtsvc "jybooking/internal/pkg/jwt"
	"jybooking/internal/pkg/response"
	"jybooking/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores the caller's identity on
// the gin context for the rbac middleware and handlers.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// IdentityFrom rebuilds the caller identity set by Auth. Returns nil on
// unauthenticated requests.
func IdentityFrom(c *gin.Context) *rbac.Identity {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil
	}
	return &rbac.Identity{
		SubjectID: userID,
		Role:      domain.UserRole(c.GetString("role")),
	}
}
