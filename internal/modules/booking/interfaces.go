package booking

import (
	"context"

	"jybooking/internal/domain"
)

// Store is the minimal persistence contract the lifecycle manager needs:
// append, point lookup, in-place update and scans. No delete; cancelled
// bookings stay on record.
type Store interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error

	// ListByListing returns every booking for the listing in ascending
	// creation order, cancelled ones included.
	ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error)

	// List returns a page of bookings, newest first, optionally filtered
	// by status, plus the total matching count.
	List(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, int64, error)

	// LastSequence reports the highest numeric suffix among persisted
	// booking numbers, 0 when there are none.
	LastSequence(ctx context.Context) (int64, error)
}

// TitleResolver resolves a listing's display title. Absence is a normal
// outcome, not an error.
type TitleResolver interface {
	ResolveTitle(ctx context.Context, listingType domain.ListingType, listingID string) (string, bool)
}
