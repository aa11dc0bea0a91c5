package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/obs"
)

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address via the Geocoding API. Any provider
// failure or ambiguity surfaces as domain.ErrAddressNotFound: from
// the pipeline's point of view the address simply could not be used.
func (g *GoogleMapsProvider) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "googlemaps.Geocode")(&err)

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		query := url.Values{}
		query.Set("address", address)
		return g.newRequest(ctx, "/maps/api/geocode/json", query)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %v: %w", address, err, domain.ErrAddressNotFound)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: decode response: %v: %w", address, err, domain.ErrAddressNotFound)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: status %s: %w", address, decoded.Status, domain.ErrAddressNotFound)
	}

	loc := decoded.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lon: loc.Lng}, nil
}
