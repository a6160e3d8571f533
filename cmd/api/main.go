package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"jybooking/internal/config"
	"jybooking/internal/database"
	"jybooking/internal/middleware"
	"jybooking/internal/modules/auth"
	"jybooking/internal/modules/booking"
	"jybooking/internal/modules/catalog"
	jwtsvc "jybooking/internal/pkg/jwt"
	"jybooking/internal/repository"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	homestayRepo := repository.NewHomestayRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(homestayRepo, guideRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	seq := booking.NewSequence()
	if last, err := bookingRepo.LastSequence(context.Background()); err == nil {
		seq.Reseed(last)
	}

	bookingService := booking.NewService(bookingRepo, catalogService, seq)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authed := v1.Group("/")
		authed.Use(middleware.Auth(j))

		authHandler.RegisterRoutes(v1, authed)
		catalogHandler.RegisterRoutes(v1, authed)
		bookingHandler.RegisterRoutes(authed)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
