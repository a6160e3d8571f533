package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jybooking/internal/config"
	"jybooking/internal/database"
	"jybooking/internal/domain"
	"jybooking/internal/repository"
)

// Seeds one user per role plus a couple of sample listings so the API
// is usable right after a fresh migration.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	homestays := repository.NewHomestayRepository(db)
	guides := repository.NewGuideRepository(db)

	now := time.Now()

	seedUsers := []struct {
		email string
		name  string
		role  domain.UserRole
	}{
		{"admin@jybooking.local", "Admin", domain.RoleAdmin},
		{"host@jybooking.local", "Aigerim the Host", domain.RoleHost},
		{"guide@jybooking.local", "Nurlan the Guide", domain.RoleGuide},
		{"customer@jybooking.local", "Dana", domain.RoleCustomer},
	}

	ids := map[domain.UserRole]string{}
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		u := &domain.User{
			ID:           uuid.NewString(),
			Email:        su.email,
			PasswordHash: string(hash),
			Name:         su.name,
			Role:         su.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Printf("seed user %s skipped: %v", su.email, err)
			continue
		}
		ids[su.role] = u.ID
		log.Printf("seeded user %s (%s)", su.email, su.role)
	}

	if hostID, ok := ids[domain.RoleHost]; ok {
		h := &domain.Homestay{
			ID:            uuid.NewString(),
			HostID:        hostID,
			Title:         "Lakeside Family Homestay",
			Description:   "Two rooms, mountain view, breakfast included.",
			City:          "Almaty",
			MaxGuests:     4,
			PricePerNight: 55,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := homestays.Create(ctx, h); err != nil {
			log.Printf("seed homestay skipped: %v", err)
		} else {
			log.Printf("seeded homestay %s", h.ID)
		}
	}

	if guideUserID, ok := ids[domain.RoleGuide]; ok {
		g := &domain.Guide{
			ID:          uuid.NewString(),
			UserID:      guideUserID,
			Name:        "Nurlan the Guide",
			Bio:         "Trekking and city tours.",
			City:        "Almaty",
			Languages:   "kk,ru,en",
			PricePerDay: 80,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := guides.Create(ctx, g); err != nil {
			log.Printf("seed guide skipped: %v", err)
		} else {
			log.Printf("seeded guide %s", g.ID)
		}
	}
}
