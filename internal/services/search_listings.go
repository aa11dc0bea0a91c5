package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/obs"
	"rental-commute-service/internal/ports"
	"time"
)

// Validated search input. The HTTP layer produces this from the raw
// request body; everything here is already well-typed and in range.
type SearchRequest struct {
	UserAddress string
	Mode        domain.TravelMode
	Filters     domain.Filters
	SortBy      domain.SortKey
	Ascending   bool
	Page        int
	PageSize    int
}

// One assembled page. TotalListings is the post-drop count for this
// page: listings without a resolvable commute are silently excluded,
// so a page can carry fewer rows than PageSize.
type SearchResult struct {
	Page          int
	PageSize      int
	TotalListings int
	Listings      []*domain.EnrichedListing
}

// SearchService runs the full pipeline: geocode the searcher's
// address, resolve the nearest supported region, query the listings
// store, enrich the page with commute durations, and assemble the
// response rows.
type SearchService struct {
	Geocoder    ports.Geocoder
	Repo        ports.ListingRepository
	Provider    ports.CommuteProvider
	Resolver    *RegionResolver
	ArrivalHour int

	// Now is the clock used for the arrival-time policy. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
}

func (s *SearchService) Search(ctx context.Context, req SearchRequest) (_ *SearchResult, err error) {
	defer obs.Time(ctx, "search.listings")(&err)

	userLoc, err := s.Geocoder.Geocode(ctx, req.UserAddress)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			return nil, fmt.Errorf("search listings: geocode %q: %w", req.UserAddress, err)
		}
		return nil, fmt.Errorf("search listings: geocode: %w", err)
	}

	region, _, err := s.Resolver.Resolve(userLoc)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}

	listings, err := s.Repo.SearchListings(ctx, ports.ListingSearch{
		UserLocation: userLoc,
		Region:       region.Name,
		Filters:      req.Filters,
		SortBy:       req.SortBy,
		Ascending:    req.Ascending,
		Page:         req.Page,
		PageSize:     req.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("search listings: query store: %w", err)
	}

	result := &SearchResult{
		Page:     req.Page,
		PageSize: req.PageSize,
		Listings: []*domain.EnrichedListing{},
	}
	if len(listings) == 0 {
		return result, nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	arriveBy := NextArrival(now(), s.ArrivalHour)

	// Origins are built in page order; enrichment preserves it, so
	// commutes[i] always belongs to listings[i].
	origins := make([]domain.Coordinates, 0, len(listings))
	for _, l := range listings {
		origins = append(origins, l.Location)
	}

	commutes := EnrichCommutes(ctx, s.Provider, origins, userLoc, req.Mode, arriveBy)

	for i, l := range listings {
		c := commutes[i]
		if c == nil {
			continue
		}
		result.Listings = append(result.Listings, &domain.EnrichedListing{
			Listing:        *l,
			CommuteSeconds: c.DurationSeconds,
			CommuteMinutes: float64(c.DurationSeconds) / 60,
			CommuteURL:     commuteURL(l.Location, userLoc, req.Mode, arriveBy),
		})
	}

	if len(result.Listings) == 0 {
		return nil, fmt.Errorf(
			"search listings: destination unreachable by %s for all %d listings on page: %w",
			req.Mode, len(listings), domain.ErrNoRouteFound,
		)
	}

	result.TotalListings = len(result.Listings)
	return result, nil
}

// commuteURL builds a deep link to the mapping provider's direction
// view from a listing to the searcher's destination. The arrival-time
// parameter is only included for modes where it changes the route.
func commuteURL(origin, destination domain.Coordinates, mode domain.TravelMode, arriveBy time.Time) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin.String())
	q.Set("destination", destination.String())
	q.Set("travelmode", string(mode))
	if mode.ArrivalTimeRelevant() {
		q.Set("arrival_time", fmt.Sprintf("%d", arriveBy.Unix()))
	}
	return "https://www.google.com/maps/dir/?" + q.Encode()
}
