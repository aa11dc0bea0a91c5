package ports

import (
	"context"
	"rental-commute-service/internal/domain"
	"time"
)

// A resolved commute for one origin.
type CommuteResult struct {
	DurationSeconds int
}

// Contract for retrieving a door-to-door commute duration from an
// external routing provider. A (nil, nil) return means the provider
// answered but found no route for the origin.
type CommuteProvider interface {
	RouteDuration(
		ctx context.Context,
		origin domain.Coordinates,
		destination domain.Coordinates,
		mode domain.TravelMode,
		arriveBy time.Time,
	) (*CommuteResult, error)
}

// Optional extension of CommuteProvider for modes where the provider
// accepts many origins in a single request.
type CommuteMatrixProvider interface {
	CommuteProvider
	// Return one result per origin, in origin order. A nil element
	// means no route was found for that origin.
	RouteDurations(
		ctx context.Context,
		origins []domain.Coordinates,
		destination domain.Coordinates,
		mode domain.TravelMode,
		arriveBy time.Time,
	) ([]*CommuteResult, error)
}
