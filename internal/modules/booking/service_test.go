package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"jybooking/internal/domain"
	"jybooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStore) ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) List(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) LastSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type stubTitles struct {
	title string
	ok    bool
}

func (s stubTitles) ResolveTitle(ctx context.Context, listingType domain.ListingType, listingID string) (string, bool) {
	return s.title, s.ok
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(dateLayout)
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ListingType: "homestay",
		ListingID:   "L1",
		CheckIn:     futureDate(1),
		CheckOut:    futureDate(3),
		Guests:      GuestCountInput{Adults: 2, Children: 1},
		GuestDetails: domain.GuestDetails{
			Name:  "Dana",
			Email: "dana@example.com",
			Phone: "+77001234567",
		},
		Pricing: domain.Pricing{BasePrice: 100, Taxes: 10, Total: 110},
	}
}

func TestCreateBooking_CollectsAllFieldErrors(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	_, err := service.CreateBooking(context.Background(), "u1", CreateBookingRequest{})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"listing_type", "listing_id", "check_in", "check_out",
		"guests.adults", "guest_details.name", "guest_details.email",
	}, fields)

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_CheckInMustBeFuture(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	req := validRequest()
	req.CheckIn = "2020-01-01"

	_, err := service.CreateBooking(context.Background(), "u1", req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "check_in", ve.Fields[0].Field)
}

func TestCreateBooking_CheckOutMustBeAfterCheckIn(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	req := validRequest()
	req.CheckOut = req.CheckIn

	_, err := service.CreateBooking(context.Background(), "u1", req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "check_out", ve.Fields[0].Field)
}

func TestCreateBooking_UnparsableDateIsFieldError(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	req := validRequest()
	req.CheckIn = "next tuesday"

	_, err := service.CreateBooking(context.Background(), "u1", req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "check_in", ve.Fields[0].Field)
}

func TestCreateBooking_Conflict(t *testing.T) {
	store := new(MockStore)
	seq := NewSequence()
	service := NewService(store, stubTitles{}, seq)

	in, _ := time.Parse(dateLayout, futureDate(2))
	out, _ := time.Parse(dateLayout, futureDate(4))
	store.On("ListByListing", mock.Anything, "L1").Return([]domain.Booking{
		{
			ID:            "existing",
			BookingNumber: "JY-2026-001001",
			ListingID:     "L1",
			CheckIn:       in,
			CheckOut:      out,
			Status:        domain.BookingConfirmed,
		},
	}, nil)

	_, err := service.CreateBooking(context.Background(), "u1", validRequest())

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "existing", ce.Conflicting.ID)
	assert.Equal(t, "JY-2026-001001", ce.Conflicting.BookingNumber)
	assert.Equal(t, in, ce.Conflicting.CheckIn)

	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// A rejected creation must not consume a sequence number.
	assert.Equal(t, "JY-2026-001001", seq.Next(2026))
}

func TestCreateBooking_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{title: "Lakeside Family Homestay", ok: true}, NewSequence())

	store.On("ListByListing", mock.Anything, "L1").Return([]domain.Booking{}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.CreateBooking(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, domain.ListingHomestay, b.ListingType)
	assert.Equal(t, "Lakeside Family Homestay", b.ListingTitle)
	assert.Equal(t, 2, b.Nights)
	assert.Equal(t, 3, b.Guests.Total)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, "JY", b.BookingNumber[:2])
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)

	store.AssertExpectations(t)
}

func TestCreateBooking_TitleLookupIsBestEffort(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{ok: false}, NewSequence())

	store.On("ListByListing", mock.Anything, "L1").Return([]domain.Booking{}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.CreateBooking(context.Background(), "u1", validRequest())

	require.NoError(t, err)
	assert.Empty(t, b.ListingTitle)
}

func TestCreateBooking_StoreFailurePropagates(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	boom := errors.New("db down")
	store.On("ListByListing", mock.Anything, "L1").Return(nil, boom)

	_, err := service.CreateBooking(context.Background(), "u1", validRequest())
	assert.ErrorIs(t, err, boom)
}

func TestCancelBooking_NotFound(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	store.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := service.CancelBooking(context.Background(), "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	store.On("GetByID", mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		ListingID: "L1",
		Status:    domain.BookingCancelled,
	}, nil)

	_, err := service.CancelBooking(context.Background(), "b1", "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelBooking_CompletedIsNotCancellable(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	store.On("GetByID", mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		ListingID: "L1",
		Status:    domain.BookingCompleted,
	}, nil)

	_, err := service.CancelBooking(context.Background(), "b1", "")
	assert.ErrorIs(t, err, ErrCancelCompleted)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelBooking_Success(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	store.On("GetByID", mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		ListingID: "L1",
		Status:    domain.BookingConfirmed,
		Pricing:   domain.Pricing{Total: 110},
	}, nil)
	store.On("Update", mock.Anything, mock.Anything).Return(nil)

	result, err := service.CancelBooking(context.Background(), "b1", "plans changed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, result.Booking.Status)
	assert.Equal(t, "plans changed", result.Booking.CancellationReason)
	require.NotNil(t, result.Booking.CancelledAt)
	assert.Equal(t, 110.0, result.RefundAmount)
	assert.Equal(t, "pending", result.RefundStatus)

	store.AssertExpectations(t)
}

func TestResolveOwner(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, stubTitles{}, NewSequence())

	store.On("GetByID", mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
	store.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	store.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("db down"))

	owner, ok, err := service.ResolveOwner(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "u1", owner)

	_, ok, err = service.ResolveOwner(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = service.ResolveOwner(context.Background(), "broken")
	assert.Error(t, err)
}
