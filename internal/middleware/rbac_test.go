package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jybooking/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func perform(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		permission string
		wantStatus int
	}{
		{"unauthenticated", "", "", "booking:read", http.StatusUnauthorized},
		{"customer allowed", "u1", "customer", "booking:create", http.StatusOK},
		{"customer lacks booking:delete", "u1", "customer", "booking:delete", http.StatusForbidden},
		{"admin wildcard", "a1", "admin", "booking:delete", http.StatusOK},
		{"unknown role fails closed", "u1", "superuser", "booking:read", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", asUser(tt.userID, tt.role), RequirePermission(tt.permission), okHandler)
			w := perform(r, http.MethodGet, "/x")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/x", asUser("u1", "guide"), RequireRole("guide", "admin"), okHandler)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/x").Code)

	r = gin.New()
	r.GET("/x", asUser("u1", "customer"), RequireRole("guide", "admin"), okHandler)
	assert.Equal(t, http.StatusForbidden, perform(r, http.MethodGet, "/x").Code)
}

func TestRequireOwnership(t *testing.T) {
	resolver := func(ownerID string, ok bool, err error) rbac.OwnerResolver {
		return func(ctx context.Context, resourceID string) (string, bool, error) {
			return ownerID, ok, err
		}
	}

	tests := []struct {
		name       string
		userID     string
		role       string
		resolve    rbac.OwnerResolver
		wantStatus int
	}{
		{"owner allowed", "u1", "customer", resolver("u1", true, nil), http.StatusOK},
		{"non-owner forbidden", "u2", "customer", resolver("u1", true, nil), http.StatusForbidden},
		{"admin bypass", "a1", "admin", resolver("someone-else", true, nil), http.StatusOK},
		{"absent resource is 404", "u1", "customer", resolver("", false, nil), http.StatusNotFound},
		{"resolver failure is 500", "u1", "customer", resolver("", false, errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x/:id", asUser(tt.userID, tt.role), RequireOwnership(tt.resolve), okHandler)
			w := perform(r, http.MethodGet, "/x/b1")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
