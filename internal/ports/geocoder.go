package ports

import (
	"context"
	"rental-commute-service/internal/domain"
)

// Contract for turning a free-form address into coordinates.
type Geocoder interface {
	// Resolve an address to a coordinate. Implementations return an
	// error wrapping domain.ErrAddressNotFound when the provider
	// cannot resolve the address unambiguously.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
