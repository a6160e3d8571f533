package booking

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	"jybooking/internal/domain"
	"jybooking/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service struct {
	store  Store
	titles TitleResolver
	seq    *Sequence

	// locks serializes check-then-insert per listing so two concurrent
	// creations cannot both pass the availability scan. Unrelated
	// listings proceed in parallel.
	locks listingLocks
}

func NewService(store Store, titles TitleResolver, seq *Sequence) *Service {
	return &Service{
		store:  store,
		titles: titles,
		seq:    seq,
	}
}

// CreateBooking validates the request, checks availability and persists
// a new pending booking owned by userID.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*domain.Booking, error) {
	var fields []FieldError

	listingType := domain.ListingType(req.ListingType)
	if !listingType.Valid() {
		fields = append(fields, FieldError{Field: "listing_type", Message: `Listing type must be "homestay" or "guide"`})
	}
	if req.ListingID == "" {
		fields = append(fields, FieldError{Field: "listing_id", Message: "Listing ID is required"})
	}
	if req.CheckIn == "" {
		fields = append(fields, FieldError{Field: "check_in", Message: "Check-in date is required"})
	}
	if req.CheckOut == "" {
		fields = append(fields, FieldError{Field: "check_out", Message: "Check-out date is required"})
	}
	if req.Guests.Adults < 1 {
		fields = append(fields, FieldError{Field: "guests.adults", Message: "At least 1 adult guest is required"})
	}
	if strings.TrimSpace(req.GuestDetails.Name) == "" {
		fields = append(fields, FieldError{Field: "guest_details.name", Message: "Guest name is required"})
	}
	if strings.TrimSpace(req.GuestDetails.Email) == "" {
		fields = append(fields, FieldError{Field: "guest_details.email", Message: "Guest email is required"})
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, fieldError("check_in", "Check-in date must be a valid date (YYYY-MM-DD)")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, fieldError("check_out", "Check-out date must be a valid date (YYYY-MM-DD)")
	}

	if !checkIn.After(time.Now()) {
		return nil, fieldError("check_in", "Check-in date must be in the future")
	}
	if !checkOut.After(checkIn) {
		return nil, fieldError("check_out", "Check-out date must be after check-in date")
	}

	unlock := s.locks.lock(req.ListingID)
	defer unlock()

	existing, err := s.store.ListByListing(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if c := FindConflict(existing, req.ListingID, checkIn, checkOut, ""); c != nil {
		return nil, &ConflictError{
			RequestedCheckIn:  checkIn,
			RequestedCheckOut: checkOut,
			Conflicting: ConflictingBooking{
				ID:            c.ID,
				BookingNumber: c.BookingNumber,
				CheckIn:       c.CheckIn,
				CheckOut:      c.CheckOut,
			},
		}
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))

	title, _ := s.titles.ResolveTitle(ctx, listingType, req.ListingID)

	now := time.Now()
	b := &domain.Booking{
		ID:            uuid.NewString(),
		BookingNumber: s.seq.Next(now.Year()),
		UserID:        userID,
		ListingType:   listingType,
		ListingID:     req.ListingID,
		ListingTitle:  title,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Guests: domain.GuestCount{
			Adults:   req.Guests.Adults,
			Children: req.Guests.Children,
			Total:    req.Guests.Adults + req.Guests.Children,
		},
		GuestDetails:  req.GuestDetails,
		SpecialReqs:   req.SpecialRequests,
		Pricing:       req.Pricing,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CancelBooking transitions a pending or confirmed booking to cancelled.
// A second cancel is an error, not a no-op: ErrAlreadyCancelled for a
// cancelled booking, ErrCancelCompleted for a completed one, and the
// stored record is left untouched in both cases.
func (s *Service) CancelBooking(ctx context.Context, id, reason string) (*CancelResult, error) {
	b, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(b.ListingID)
	defer unlock()

	// Re-read under the listing lock: the status may have moved since
	// the unlocked lookup.
	b, err = s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case domain.BookingCancelled:
		return nil, ErrAlreadyCancelled
	case domain.BookingCompleted:
		return nil, ErrCancelCompleted
	}

	now := time.Now()
	b.Status = domain.BookingCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now

	if err := s.store.Update(ctx, b); err != nil {
		return nil, err
	}

	return &CancelResult{
		Booking:      b,
		RefundAmount: b.Pricing.Total,
		RefundStatus: "pending",
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getByID(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, status domain.BookingStatus, page, limit int) ([]domain.Booking, int64, error) {
	return s.store.List(ctx, status, limit, (page-1)*limit)
}

// ResolveOwner adapts booking lookup to the guard's ownership contract.
func (s *Service) ResolveOwner(ctx context.Context, bookingID string) (string, bool, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return b.UserID, true, nil
}

func (s *Service) getByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

type listingLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *listingLocks) lock(listingID string) (unlock func()) {
	l.mu.Lock()
	if l.m == nil {
		l.m = make(map[string]*sync.Mutex)
	}
	lm, ok := l.m[listingID]
	if !ok {
		lm = &sync.Mutex{}
		l.m[listingID] = lm
	}
	l.mu.Unlock()

	lm.Lock()
	return lm.Unlock
}
