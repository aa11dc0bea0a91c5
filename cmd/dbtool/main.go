package main

import (
	"database/sql"
	"log"
	"os"
	"rental-commute-service/internal/adapters/repositories"
	"rental-commute-service/internal/config"
	"rental-commute-service/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool initializes the listings schema and loads seed rows, against
// Postgres when DATABASE_URL is set and the local SQLite file otherwise.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) != "" {
		conn, err = db.Open(databaseURL)
		dialect = repositories.DialectPostgres
	} else {
		conn, err = db.OpenSQLite(config.Get("DB_PATH", "data/listings.db"))
		dialect = repositories.DialectSQLite
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/listings.json")

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, seedPath, dialect); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
