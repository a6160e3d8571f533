package booking

import (
	"errors"
	"net/http"

	"jybooking/internal/domain"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", middleware.RequirePermission("booking:read"), h.ListBookings)
	rg.POST("/bookings", middleware.RequirePermission("booking:create"), h.CreateBooking)
	rg.GET("/bookings/:id",
		middleware.RequirePermission("booking:read"),
		middleware.RequireOwnership(h.service.ResolveOwner),
		h.GetBooking)
	rg.PUT("/bookings/:id/cancel",
		middleware.RequirePermission("booking:cancel"),
		middleware.RequireOwnership(h.service.ResolveOwner),
		h.CancelBooking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	page, limit := response.ParsePagination(c)
	status := domain.BookingStatus(c.Query("status"))

	bookings, total, err := h.service.ListBookings(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": response.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", ve.Fields)
			return
		}
		var ce *ConflictError
		if errors.As(err, &ce) {
			response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT", "The selected dates are not available", ce)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrAlreadyCancelled):
			response.Error(c, http.StatusBadRequest, "ALREADY_CANCELLED", "This booking is already cancelled")
		case errors.Is(err, ErrCancelCompleted):
			response.Error(c, http.StatusBadRequest, "CANNOT_CANCEL_COMPLETED", "Cannot cancel a completed booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":                  result.Booking.ID,
		"status":              result.Booking.Status,
		"cancellation_reason": result.Booking.CancellationReason,
		"cancelled_at":        result.Booking.CancelledAt,
		"refund_amount":       result.RefundAmount,
		"refund_status":       result.RefundStatus,
	})
}
