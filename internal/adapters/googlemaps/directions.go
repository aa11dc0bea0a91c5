package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/ports"
	"strconv"
	"time"
)

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// RouteDuration resolves a single origin through the Directions API.
// This is the only operation available for transit. A (nil, nil)
// return means the provider answered but found no route.
func (g *GoogleMapsProvider) RouteDuration(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) (*ports.CommuteResult, error) {
	makeQuery := func() url.Values {
		q := url.Values{}
		q.Set("origin", origin.String())
		q.Set("destination", destination.String())
		q.Set("mode", string(mode))
		q.Set("arrival_time", strconv.FormatInt(arriveBy.Unix(), 10))
		return q
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/directions/json", makeQuery())
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return nil, nil
	default:
		return nil, fmt.Errorf("directions status %s", decoded.Status)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return nil, nil
	}

	return &ports.CommuteResult{DurationSeconds: decoded.Routes[0].Legs[0].Duration.Value}, nil
}
