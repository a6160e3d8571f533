package catalog

import "errors"

var ErrNotFound = errors.New("listing not found")

type CreateHomestayRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	City          string  `json:"city" binding:"required"`
	Address       string  `json:"address"`
	MaxGuests     int     `json:"max_guests" binding:"required,gt=0"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gte=0"`
}

type CreateGuideRequest struct {
	Name        string  `json:"name" binding:"required"`
	Bio         string  `json:"bio"`
	City        string  `json:"city" binding:"required"`
	Languages   string  `json:"languages"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gte=0"`
}
