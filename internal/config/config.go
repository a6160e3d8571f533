package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	// DatabaseURL selects the backing store: postgres:// DSNs go to
	// PostgreSQL, anything else is treated as a SQLite file path.
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		DatabaseURL: getenv("DATABASE_URL", "jybooking.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      getduration("JWT_TTL", 24*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
