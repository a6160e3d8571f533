package repository

import (
	"context"
	"sort"
	"sync"

	"jybooking/internal/domain"
)

// MemoryBookingStore is a list-backed booking store used by tests.
// Reads copy records so callers never observe an in-progress mutation.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{}
}

func (s *MemoryBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == b.ID || s.bookings[i].BookingNumber == b.BookingNumber {
			return ErrDuplicate
		}
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryBookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryBookingStore) Update(ctx context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			s.bookings[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryBookingStore) ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Insertion order is creation order.
	out := make([]domain.Booking, 0)
	for i := range s.bookings {
		if s.bookings[i].ListingID == listingID {
			out = append(out, s.bookings[i])
		}
	}
	return out, nil
}

func (s *MemoryBookingStore) List(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]domain.Booking, 0, len(s.bookings))
	for i := range s.bookings {
		if status == "" || s.bookings[i].Status == status {
			filtered = append(filtered, s.bookings[i])
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []domain.Booking{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (s *MemoryBookingStore) LastSequence(ctx context.Context) (int64, error) {
	return 0, nil
}
