package repository

import (
	"context"
	"errors"
	"time"

	"jybooking/internal/domain"

	"gorm.io/gorm"
)

type HomestayRepository struct {
	db *gorm.DB
}

func NewHomestayRepository(db *gorm.DB) *HomestayRepository {
	return &HomestayRepository{db: db}
}

type homestayModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	HostID        string    `gorm:"column:host_id;index"`
	Title         string    `gorm:"column:title"`
	Description   *string   `gorm:"column:description"`
	City          string    `gorm:"column:city;index"`
	Address       *string   `gorm:"column:address"`
	MaxGuests     int       `gorm:"column:max_guests"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (homestayModel) TableName() string { return "homestays" }

func toDomainHomestay(m homestayModel) *domain.Homestay {
	h := &domain.Homestay{
		ID:            m.ID,
		HostID:        m.HostID,
		Title:         m.Title,
		City:          m.City,
		MaxGuests:     m.MaxGuests,
		PricePerNight: m.PricePerNight,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Description != nil {
		h.Description = *m.Description
	}
	if m.Address != nil {
		h.Address = *m.Address
	}
	return h
}

func (r *HomestayRepository) Create(ctx context.Context, h *domain.Homestay) error {
	m := homestayModel{
		ID:            h.ID,
		HostID:        h.HostID,
		Title:         h.Title,
		Description:   nullable(h.Description),
		City:          h.City,
		Address:       nullable(h.Address),
		MaxGuests:     h.MaxGuests,
		PricePerNight: h.PricePerNight,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *HomestayRepository) GetByID(ctx context.Context, id string) (*domain.Homestay, error) {
	var m homestayModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainHomestay(m), nil
}

func (r *HomestayRepository) List(ctx context.Context) ([]domain.Homestay, error) {
	var rows []homestayModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Homestay, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainHomestay(m))
	}
	return out, nil
}

type GuideRepository struct {
	db *gorm.DB
}

func NewGuideRepository(db *gorm.DB) *GuideRepository {
	return &GuideRepository{db: db}
}

type guideModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	UserID      string    `gorm:"column:user_id;index"`
	Name        string    `gorm:"column:name"`
	Bio         *string   `gorm:"column:bio"`
	City        string    `gorm:"column:city;index"`
	Languages   *string   `gorm:"column:languages"`
	PricePerDay float64   `gorm:"column:price_per_day"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (guideModel) TableName() string { return "guides" }

func toDomainGuide(m guideModel) *domain.Guide {
	g := &domain.Guide{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		City:        m.City,
		PricePerDay: m.PricePerDay,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Bio != nil {
		g.Bio = *m.Bio
	}
	if m.Languages != nil {
		g.Languages = *m.Languages
	}
	return g
}

func (r *GuideRepository) Create(ctx context.Context, g *domain.Guide) error {
	m := guideModel{
		ID:          g.ID,
		UserID:      g.UserID,
		Name:        g.Name,
		Bio:         nullable(g.Bio),
		City:        g.City,
		Languages:   nullable(g.Languages),
		PricePerDay: g.PricePerDay,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *GuideRepository) GetByID(ctx context.Context, id string) (*domain.Guide, error) {
	var m guideModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainGuide(m), nil
}

func (r *GuideRepository) List(ctx context.Context) ([]domain.Guide, error) {
	var rows []guideModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guide, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGuide(m))
	}
	return out, nil
}

// AutoMigrate creates/updates the schema for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &homestayModel{}, &guideModel{}, &bookingModel{})
}
