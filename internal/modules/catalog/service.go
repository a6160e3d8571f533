package catalog

import (
	"context"
	"errors"
	"time"

	"jybooking/internal/domain"
	"jybooking/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	homestays *repository.HomestayRepository
	guides    *repository.GuideRepository
}

func NewService(homestays *repository.HomestayRepository, guides *repository.GuideRepository) *Service {
	return &Service{
		homestays: homestays,
		guides:    guides,
	}
}

// ResolveTitle implements the booking module's TitleResolver. Lookup is
// best-effort: absence and transient failures both come back as not-ok,
// a booking without a cached title is still a valid booking.
func (s *Service) ResolveTitle(ctx context.Context, listingType domain.ListingType, listingID string) (string, bool) {
	switch listingType {
	case domain.ListingHomestay:
		h, err := s.homestays.GetByID(ctx, listingID)
		if err != nil {
			return "", false
		}
		return h.Title, true
	case domain.ListingGuide:
		g, err := s.guides.GetByID(ctx, listingID)
		if err != nil {
			return "", false
		}
		return g.Name, true
	}
	return "", false
}

func (s *Service) ListHomestays(ctx context.Context) ([]domain.Homestay, error) {
	return s.homestays.List(ctx)
}

func (s *Service) GetHomestay(ctx context.Context, id string) (*domain.Homestay, error) {
	h, err := s.homestays.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return h, err
}

func (s *Service) CreateHomestay(ctx context.Context, hostID string, req CreateHomestayRequest) (*domain.Homestay, error) {
	now := time.Now()
	h := &domain.Homestay{
		ID:            uuid.NewString(),
		HostID:        hostID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Address:       req.Address,
		MaxGuests:     req.MaxGuests,
		PricePerNight: req.PricePerNight,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.homestays.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) ListGuides(ctx context.Context) ([]domain.Guide, error) {
	return s.guides.List(ctx)
}

func (s *Service) GetGuide(ctx context.Context, id string) (*domain.Guide, error) {
	g, err := s.guides.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return g, err
}

func (s *Service) CreateGuide(ctx context.Context, userID string, req CreateGuideRequest) (*domain.Guide, error) {
	now := time.Now()
	g := &domain.Guide{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Bio:         req.Bio,
		City:        req.City,
		Languages:   req.Languages,
		PricePerDay: req.PricePerDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.guides.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
