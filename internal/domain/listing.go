package domain

import "time"

type ListingType string

const (
	ListingHomestay ListingType = "homestay"
	ListingGuide    ListingType = "guide"
)

func (t ListingType) Valid() bool {
	return t == ListingHomestay || t == ListingGuide
}

type Homestay struct {
	ID            string    `json:"id"`
	HostID        string    `json:"host_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	City          string    `json:"city"`
	Address       string    `json:"address,omitempty"`
	MaxGuests     int       `json:"max_guests"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Guide struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio,omitempty"`
	City        string    `json:"city"`
	Languages   string    `json:"languages,omitempty"`
	PricePerDay float64   `json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
