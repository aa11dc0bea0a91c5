package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"rental-commute-service/internal/api/dto"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/ports"
	"rental-commute-service/internal/services"
	"strings"
	"testing"
	"time"
)

type fixedGeocoder struct {
	coords domain.Coordinates
	err    error
}

func (g *fixedGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	if g.err != nil {
		return domain.Coordinates{}, g.err
	}
	return g.coords, nil
}

type fixedListingRepo struct {
	listings []*domain.Listing
}

func (r *fixedListingRepo) SearchListings(ctx context.Context, q ports.ListingSearch) ([]*domain.Listing, error) {
	return r.listings, nil
}

type fixedCommuteProvider struct {
	seconds int
	noRoute bool
}

func (p *fixedCommuteProvider) RouteDuration(
	ctx context.Context,
	origin, destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) (*ports.CommuteResult, error) {
	if p.noRoute {
		return nil, nil
	}
	return &ports.CommuteResult{DurationSeconds: p.seconds}, nil
}

func newTestHandler(geo *fixedGeocoder, repo *fixedListingRepo, provider *fixedCommuteProvider) *ListingsHandler {
	resolver := services.NewRegionResolver([]domain.Region{
		{Name: "Seattle, WA", Center: domain.Coordinates{Lat: 47.6062, Lon: -122.3321}},
	}, 50)

	return &ListingsHandler{Service: &services.SearchService{
		Geocoder:    geo,
		Repo:        repo,
		Provider:    provider,
		Resolver:    resolver,
		ArrivalHour: 9,
		Now:         func() time.Time { return time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC) },
	}}
}

func defaultTestHandler() *ListingsHandler {
	return newTestHandler(
		&fixedGeocoder{coords: domain.Coordinates{Lat: 47.6101, Lon: -122.2015}},
		&fixedListingRepo{listings: []*domain.Listing{{
			ID:               1,
			FormattedAddress: "1 Pine St",
			City:             "Seattle",
			Region:           "Seattle, WA",
			ListPrice:        1800,
			Beds:             2,
			FullBaths:        1,
			Location:         domain.Coordinates{Lat: 47.611, Lon: -122.20},
			DistanceKm:       1.2,
		}}},
		&fixedCommuteProvider{seconds: 600},
	)
}

func postSearch(t *testing.T, h *ListingsHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/listings/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Search(rec, req)
	return rec
}

func TestSearchHappyPath(t *testing.T) {
	rec := postSearch(t, defaultTestHandler(), `{"user_address": "500 Bellevue Way NE", "commute_type": "driving"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var res dto.SearchListingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Page != 1 || res.PageSize != 20 {
		t.Errorf("page = %d size = %d, want defaults 1/20", res.Page, res.PageSize)
	}
	if res.TotalListings != 1 || len(res.Results) != 1 {
		t.Fatalf("total = %d results = %d, want 1/1", res.TotalListings, len(res.Results))
	}

	got := res.Results[0]
	if got.FormattedAddress != "1 Pine St" {
		t.Errorf("address = %q", got.FormattedAddress)
	}
	if got.CommuteMinutes != 10 {
		t.Errorf("commute_minutes = %v, want 10", got.CommuteMinutes)
	}
	if !strings.HasPrefix(got.CommuteURL, "https://www.google.com/maps/dir/?") {
		t.Errorf("commute_url = %q", got.CommuteURL)
	}
}

func TestSearchRejectsWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/listings/search", nil)
	rec := httptest.NewRecorder()
	defaultTestHandler().Search(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow header = %q, want POST", allow)
	}
}

func TestSearchValidationRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"not json", `plain text`},
		{"missing address", `{"commute_type": "driving"}`},
		{"blank address", `{"user_address": "   "}`},
		{"unknown field", `{"user_address": "x", "bogus": 1}`},
		{"two objects", `{"user_address": "x"}{"user_address": "y"}`},
		{"bad commute type", `{"user_address": "x", "commute_type": "teleport"}`},
		{"bad sort key", `{"user_address": "x", "sort_by": "square_feet"}`},
		{"zero page", `{"user_address": "x", "page": 0}`},
		{"oversized page size", `{"user_address": "x", "page_size": 51}`},
		{"zero page size", `{"user_address": "x", "page_size": 0}`},
		{"non-numeric filter", `{"user_address": "x", "filters": {"min_price": "cheap"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postSearch(t, defaultTestHandler(), tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSearchAddressNotFound(t *testing.T) {
	h := newTestHandler(
		&fixedGeocoder{err: domain.ErrAddressNotFound},
		&fixedListingRepo{},
		&fixedCommuteProvider{},
	)

	rec := postSearch(t, h, `{"user_address": "nowhere at all"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nowhere at all") {
		t.Errorf("body should echo the address: %s", rec.Body.String())
	}
}

func TestSearchOutOfServiceArea(t *testing.T) {
	// Spokane is well beyond the 50 km admission threshold.
	h := newTestHandler(
		&fixedGeocoder{coords: domain.Coordinates{Lat: 47.6588, Lon: -117.4260}},
		&fixedListingRepo{},
		&fixedCommuteProvider{},
	)

	rec := postSearch(t, h, `{"user_address": "Spokane, WA"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestSearchNoRouteFound(t *testing.T) {
	h := newTestHandler(
		&fixedGeocoder{coords: domain.Coordinates{Lat: 47.6101, Lon: -122.2015}},
		&fixedListingRepo{listings: []*domain.Listing{{
			ID:       1,
			Region:   "Seattle, WA",
			Location: domain.Coordinates{Lat: 47.611, Lon: -122.20},
		}}},
		&fixedCommuteProvider{noRoute: true},
	)

	rec := postSearch(t, h, `{"user_address": "500 Bellevue Way NE", "commute_type": "transit"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "transit") {
		t.Errorf("body should name the mode: %s", rec.Body.String())
	}
}

func TestSearchEmptyPageIsSuccess(t *testing.T) {
	h := newTestHandler(
		&fixedGeocoder{coords: domain.Coordinates{Lat: 47.6101, Lon: -122.2015}},
		&fixedListingRepo{},
		&fixedCommuteProvider{},
	)

	rec := postSearch(t, h, `{"user_address": "500 Bellevue Way NE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var res dto.SearchListingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalListings != 0 || len(res.Results) != 0 {
		t.Fatalf("total = %d results = %d, want empty page", res.TotalListings, len(res.Results))
	}
}
