package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the listings schema. The DDL is portable between
// Postgres and SQLite.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createListingsQuery := `
	CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY,
		formatted_address TEXT NOT NULL,
		city TEXT NOT NULL,
		region TEXT NOT NULL,
		list_price REAL NOT NULL,
		beds INTEGER NOT NULL,
		full_baths INTEGER NOT NULL,
		half_baths INTEGER NOT NULL,
		property_url TEXT NOT NULL,
		primary_photo TEXT NOT NULL DEFAULT '',
		latitude REAL NOT NULL,
		longitude REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_listings_region
	ON listings(region);
	`

	statements := []string{
		createListingsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ListingSeed struct {
	ID               int     `json:"id"`
	FormattedAddress string  `json:"formatted_address"`
	City             string  `json:"city"`
	Region           string  `json:"region"`
	ListPrice        float64 `json:"list_price"`
	Beds             int     `json:"beds"`
	FullBaths        int     `json:"full_baths"`
	HalfBaths        int     `json:"half_baths"`
	PropertyURL      string  `json:"property_url"`
	PrimaryPhoto     string  `json:"primary_photo"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// Populate the listings table from a JSON file for local runs.
// Rows without coordinates are rejected: region resolution and
// commute enrichment both depend on them.
func SeedFromJSON(db *sql.DB, jsonPath string, dialect Dialect) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed listings: read %q: %w", jsonPath, err)
	}

	var data []ListingSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed listings: parse json: %w", err)
	}

	for i, item := range data {
		if item.ID <= 0 {
			return fmt.Errorf("seed listings: invalid id at index %d: %d", i, item.ID)
		}
		if strings.TrimSpace(item.Region) == "" {
			return fmt.Errorf("seed listings: id=%d: region cannot be empty", item.ID)
		}
		if item.Latitude == 0 && item.Longitude == 0 {
			return fmt.Errorf("seed listings: id=%d: coordinates are required", item.ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed listings: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ph := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		ph = append(ph, dialect.placeholder(i))
	}

	query := fmt.Sprintf(`
	INSERT INTO listings (
		id, formatted_address, city, region, list_price, beds,
		full_baths, half_baths, property_url, primary_photo, latitude, longitude
	)
	VALUES (%s)
	ON CONFLICT (id) DO UPDATE SET
		formatted_address = EXCLUDED.formatted_address,
		city = EXCLUDED.city,
		region = EXCLUDED.region,
		list_price = EXCLUDED.list_price,
		beds = EXCLUDED.beds,
		full_baths = EXCLUDED.full_baths,
		half_baths = EXCLUDED.half_baths,
		property_url = EXCLUDED.property_url,
		primary_photo = EXCLUDED.primary_photo,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`, strings.Join(ph, ", "))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed listings: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range data {
		_, err := stmt.Exec(
			l.ID, l.FormattedAddress, l.City, l.Region, l.ListPrice, l.Beds,
			l.FullBaths, l.HalfBaths, l.PropertyURL, l.PrimaryPhoto, l.Latitude, l.Longitude,
		)
		if err != nil {
			return fmt.Errorf("seed listings: insert id=%d: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed listings: commit tx: %w", err)
	}

	return nil
}
