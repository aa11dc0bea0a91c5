package googlemaps

import (
	"errors"
	"net/http"
	"time"
)

// GoogleMapsProvider talks to the Google Maps web services:
//
//   - Geocoding API for address resolution
//   - Distance Matrix API for batched multi-origin commutes
//   - Directions API for single-origin transit commutes
//
// It implements the Geocoder, CommuteProvider and
// CommuteMatrixProvider ports and is safe for concurrent use.
type GoogleMapsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleMapsProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
	}

	return provider, nil
}
