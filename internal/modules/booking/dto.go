package booking

import "jybooking/internal/domain"

type GuestCountInput struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	// Total is accepted from clients but ignored; the service recomputes it.
	Total int `json:"total"`
}

type CreateBookingRequest struct {
	ListingType     string              `json:"listing_type"`
	ListingID       string              `json:"listing_id"`
	CheckIn         string              `json:"check_in"`
	CheckOut        string              `json:"check_out"`
	Guests          GuestCountInput     `json:"guests"`
	GuestDetails    domain.GuestDetails `json:"guest_details"`
	SpecialRequests string              `json:"special_requests"`
	Pricing         domain.Pricing      `json:"pricing"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// CancelResult is the cancellation outcome plus a refund-intent signal.
// Refund execution belongs to the payment collaborator; this service
// only reports what should be refunded.
type CancelResult struct {
	Booking      *domain.Booking `json:"booking"`
	RefundAmount float64         `json:"refund_amount"`
	RefundStatus string          `json:"refund_status"`
}
