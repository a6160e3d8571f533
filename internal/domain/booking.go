package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

// GuestCount breaks down the party size. Total is always recomputed as
// Adults+Children, never taken from input.
type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children,omitempty"`
	Total    int `json:"total"`
}

// GuestDetails is the contact info used for booking notifications.
type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Pricing is supplied by the caller; this service never derives prices.
type Pricing struct {
	BasePrice   float64 `json:"base_price"`
	CleaningFee float64 `json:"cleaning_fee,omitempty"`
	ServiceFee  float64 `json:"service_fee,omitempty"`
	Taxes       float64 `json:"taxes,omitempty"`
	Total       float64 `json:"total"`
}

type Booking struct {
	ID            string        `json:"id"`
	BookingNumber string        `json:"booking_number"`
	UserID        string        `json:"user_id"`
	ListingType   ListingType   `json:"listing_type"`
	ListingID     string        `json:"listing_id"`
	ListingTitle  string        `json:"listing_title,omitempty"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	Nights        int           `json:"nights"`
	Guests        GuestCount    `json:"guests"`
	GuestDetails  GuestDetails  `json:"guest_details"`
	SpecialReqs   string        `json:"special_requests,omitempty"`
	Pricing       Pricing       `json:"pricing"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether no further status transition is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}
