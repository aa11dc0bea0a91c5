package config

import (
	"fmt"
	"os"
	"strconv"
)

// Get returns the value of an environment variable or a fallback.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Explicit process configuration, built once at startup and passed
// into constructors. Components never read the environment themselves.
type Config struct {
	Port          string
	DatabaseURL   string // postgres; when empty the sqlite path is used
	SQLitePath    string
	SeedPath      string
	GoogleAPIKey  string
	RedisAddr     string // optional geocode cache
	MaxDistanceKm float64
	ArrivalHour   int
}

func Load() (Config, error) {
	cfg := Config{
		Port:         Get("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   Get("DB_PATH", "data/listings.db"),
		SeedPath:     Get("SEED_PATH", "data/seeds/listings.json"),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
	}

	maxDist := Get("MAX_REGION_DISTANCE_KM", "50")
	v, err := strconv.ParseFloat(maxDist, 64)
	if err != nil || v <= 0 {
		return Config{}, fmt.Errorf("config: MAX_REGION_DISTANCE_KM must be a positive number, got %q", maxDist)
	}
	cfg.MaxDistanceKm = v

	hour := Get("ARRIVAL_HOUR", "9")
	h, err := strconv.Atoi(hour)
	if err != nil || h < 0 || h > 23 {
		return Config{}, fmt.Errorf("config: ARRIVAL_HOUR must be an hour 0-23, got %q", hour)
	}
	cfg.ArrivalHour = h

	return cfg, nil
}
