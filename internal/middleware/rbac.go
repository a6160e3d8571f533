package middleware

import (
	"errors"
	"net/http"

	"jybooking/internal/pkg/response"
	"jybooking/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RequirePermission allows the request only if the caller's role holds
// every listed permission.
func RequirePermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rbac.Authorize(IdentityFrom(c), permissions...); err != nil {
			abortAuthz(c, err)
			return
		}
		c.Next()
	}
}

// RequireRole allows the request if the caller has any of the listed
// roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		for _, r := range roles {
			if string(identity.Role) == r {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// RequireOwnership resolves the owner of the resource named by the "id"
// route param and allows only the owner (admins pass unconditionally).
func RequireOwnership(resolve rbac.OwnerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := rbac.AuthorizeOwnership(c.Request.Context(), IdentityFrom(c), c.Param("id"), resolve)
		if err != nil {
			abortAuthz(c, err)
			return
		}
		c.Next()
	}
}

func abortAuthz(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rbac.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, rbac.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, rbac.ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied - not resource owner")
	case errors.Is(err, rbac.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
	default:
		// Resolver failure is a dependency problem, never a denial.
		response.Error(c, http.StatusInternalServerError, "DEPENDENCY_FAILURE", "Access check failed")
	}
	c.Abort()
}
