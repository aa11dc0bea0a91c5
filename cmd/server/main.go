package main

import (
	"log"
	"net/http"
	"rental-commute-service/internal/adapters/cache"
	"rental-commute-service/internal/adapters/googlemaps"
	"rental-commute-service/internal/adapters/repositories"
	"rental-commute-service/internal/api"
	"rental-commute-service/internal/config"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/db"
	"rental-commute-service/internal/ports"
	"rental-commute-service/internal/services"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or SQLite, Google Maps, an
// optional Redis geocode cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY is required")
	}

	var repo ports.ListingRepository
	if cfg.DatabaseURL != "" {
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		repo = repositories.NewPostgresListingRepository(pg)
	} else {
		// Local runs: file-backed SQLite, seeded on startup.
		lite, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatal(err)
		}
		defer lite.Close()
		if err := repositories.InitSchema(lite); err != nil {
			log.Fatal(err)
		}
		if err := repositories.SeedFromJSON(lite, cfg.SeedPath, repositories.DialectSQLite); err != nil {
			log.Fatal(err)
		}
		repo = repositories.NewSQLiteListingRepository(lite)
	}

	provider, err := googlemaps.NewGoogleMapsProvider(cfg.GoogleAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	// Geocode results are stable, so an optional Redis layer keeps
	// repeat searches from burning provider quota.
	var geocoder ports.Geocoder = provider
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		geocoder = cache.NewRedisGeocodeCache(client, provider, 30*24*time.Hour)
	}

	search := &services.SearchService{
		Geocoder:    geocoder,
		Repo:        repo,
		Provider:    provider,
		Resolver:    services.NewRegionResolver(domain.DefaultRegions(), cfg.MaxDistanceKm),
		ArrivalHour: cfg.ArrivalHour,
	}

	router := api.NewRouter(search)

	// Write timeout covers a full enrichment fan-out against the
	// external provider on a slow day.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
