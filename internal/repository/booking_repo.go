package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"jybooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            string     `gorm:"column:id;primaryKey"`
	BookingNumber string     `gorm:"column:booking_number;uniqueIndex:idx_booking_number"`
	UserID        string     `gorm:"column:user_id;index"`
	ListingType   string     `gorm:"column:listing_type"`
	ListingID     string     `gorm:"column:listing_id;index"`
	ListingTitle  *string    `gorm:"column:listing_title"`
	CheckIn       time.Time  `gorm:"column:check_in"`
	CheckOut      time.Time  `gorm:"column:check_out"`
	Nights        int        `gorm:"column:nights"`
	Adults        int        `gorm:"column:adults"`
	Children      int        `gorm:"column:children"`
	GuestsTotal   int        `gorm:"column:guests_total"`
	GuestName     string     `gorm:"column:guest_name"`
	GuestEmail    string     `gorm:"column:guest_email"`
	GuestPhone    *string    `gorm:"column:guest_phone"`
	SpecialReqs   *string    `gorm:"column:special_requests"`
	BasePrice     float64    `gorm:"column:base_price"`
	CleaningFee   float64    `gorm:"column:cleaning_fee"`
	ServiceFee    float64    `gorm:"column:service_fee"`
	Taxes         float64    `gorm:"column:taxes"`
	TotalPrice    float64    `gorm:"column:total_price"`
	Status        string     `gorm:"column:status;index"`
	PaymentStatus string     `gorm:"column:payment_status"`
	CancelReason  *string    `gorm:"column:cancellation_reason"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:            m.ID,
		BookingNumber: m.BookingNumber,
		UserID:        m.UserID,
		ListingType:   domain.ListingType(m.ListingType),
		ListingID:     m.ListingID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Nights:        m.Nights,
		Guests: domain.GuestCount{
			Adults:   m.Adults,
			Children: m.Children,
			Total:    m.GuestsTotal,
		},
		GuestDetails: domain.GuestDetails{
			Name:  m.GuestName,
			Email: m.GuestEmail,
		},
		Pricing: domain.Pricing{
			BasePrice:   m.BasePrice,
			CleaningFee: m.CleaningFee,
			ServiceFee:  m.ServiceFee,
			Taxes:       m.Taxes,
			Total:       m.TotalPrice,
		},
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CancelledAt:   m.CancelledAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.ListingTitle != nil {
		b.ListingTitle = *m.ListingTitle
	}
	if m.GuestPhone != nil {
		b.GuestDetails.Phone = *m.GuestPhone
	}
	if m.SpecialReqs != nil {
		b.SpecialReqs = *m.SpecialReqs
	}
	if m.CancelReason != nil {
		b.CancellationReason = *m.CancelReason
	}
	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		UserID:        b.UserID,
		ListingType:   string(b.ListingType),
		ListingID:     b.ListingID,
		ListingTitle:  nullable(b.ListingTitle),
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        b.Nights,
		Adults:        b.Guests.Adults,
		Children:      b.Guests.Children,
		GuestsTotal:   b.Guests.Total,
		GuestName:     b.GuestDetails.Name,
		GuestEmail:    b.GuestDetails.Email,
		GuestPhone:    nullable(b.GuestDetails.Phone),
		SpecialReqs:   nullable(b.SpecialReqs),
		BasePrice:     b.Pricing.BasePrice,
		CleaningFee:   b.Pricing.CleaningFee,
		ServiceFee:    b.Pricing.ServiceFee,
		Taxes:         b.Pricing.Taxes,
		TotalPrice:    b.Pricing.Total,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CancelReason:  nullable(b.CancellationReason),
		CancelledAt:   b.CancelledAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return tx.Error
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", b.ID).Updates(map[string]any{
		"status":              m.Status,
		"payment_status":      m.PaymentStatus,
		"cancellation_reason": m.CancelReason,
		"cancelled_at":        m.CancelledAt,
		"updated_at":          m.UpdatedAt,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at ASC, id ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) List(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []bookingModel
	tx := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, total, nil
}

// LastSequence extracts the highest numeric suffix among stored booking
// numbers so the in-process counter can continue across restarts.
func (r *BookingRepository) LastSequence(ctx context.Context) (int64, error) {
	var numbers []string
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Pluck("booking_number", &numbers)
	if tx.Error != nil {
		return 0, tx.Error
	}

	var last int64
	for _, n := range numbers {
		i := strings.LastIndex(n, "-")
		if i < 0 {
			continue
		}
		seq, err := strconv.ParseInt(n[i+1:], 10, 64)
		if err != nil {
			continue
		}
		if seq > last {
			last = seq
		}
	}
	return last, nil
}
