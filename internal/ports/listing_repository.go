package ports

import (
	"context"
	"rental-commute-service/internal/domain"
)

// Parameters for one filtered, sorted, paginated listing search.
// Callers validate sort keys and page bounds before building this;
// the repository assumes well-typed input.
type ListingSearch struct {
	UserLocation domain.Coordinates
	Region       string
	Filters      domain.Filters
	SortBy       domain.SortKey
	Ascending    bool
	Page         int
	PageSize     int
}

// Port: a boundary for retrieving Listing entities from the store.
type ListingRepository interface {
	// Return one ordered page of listings for the region. DistanceKm
	// is populated on every returned row regardless of sort key.
	SearchListings(ctx context.Context, q ListingSearch) ([]*domain.Listing, error)
}
