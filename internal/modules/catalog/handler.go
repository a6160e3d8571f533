package catalog

import (
	"errors"
	"net/http"

	"jybooking/internal/middleware"
	"jybooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts public reads on rg and creation endpoints on
// authed (a group that already runs the auth middleware).
func (h *Handler) RegisterRoutes(rg, authed *gin.RouterGroup) {
	rg.GET("/homestays", h.ListHomestays)
	rg.GET("/homestays/:id", h.GetHomestay)
	rg.GET("/guides", h.ListGuides)
	rg.GET("/guides/:id", h.GetGuide)

	authed.POST("/homestays", middleware.RequirePermission("homestay:create"), h.CreateHomestay)
	authed.POST("/guides", middleware.RequireRole("guide", "admin"), h.CreateGuide)
}

func (h *Handler) ListHomestays(c *gin.Context) {
	homestays, err := h.service.ListHomestays(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list homestays")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"homestays": homestays})
}

func (h *Handler) GetHomestay(c *gin.Context) {
	homestay, err := h.service.GetHomestay(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Homestay not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load homestay")
		return
	}
	response.Success(c, http.StatusOK, homestay)
}

func (h *Handler) CreateHomestay(c *gin.Context) {
	var req CreateHomestayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	homestay, err := h.service.CreateHomestay(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create homestay")
		return
	}
	response.Success(c, http.StatusCreated, homestay)
}

func (h *Handler) ListGuides(c *gin.Context) {
	guides, err := h.service.ListGuides(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list guides")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guides": guides})
}

func (h *Handler) GetGuide(c *gin.Context) {
	guide, err := h.service.GetGuide(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guide")
		return
	}
	response.Success(c, http.StatusOK, guide)
}

func (h *Handler) CreateGuide(c *gin.Context) {
	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	guide, err := h.service.CreateGuide(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create guide")
		return
	}
	response.Success(c, http.StatusCreated, guide)
}
