package services

import (
	"errors"
	"fmt"
	"rental-commute-service/internal/domain"
)

// RegionResolver maps a coordinate to the nearest supported metro
// region. Pure in-memory scan over static configuration; no I/O.
type RegionResolver struct {
	Regions       []domain.Region
	MaxDistanceKm float64
}

func NewRegionResolver(regions []domain.Region, maxDistanceKm float64) *RegionResolver {
	return &RegionResolver{Regions: regions, MaxDistanceKm: maxDistanceKm}
}

// Resolve returns the nearest region and the distance to its center in
// kilometers. Ties go to the earlier region in the configured order.
// Returns domain.ErrOutOfServiceArea when the nearest center is beyond
// the admission threshold.
func (r *RegionResolver) Resolve(c domain.Coordinates) (domain.Region, float64, error) {
	if len(r.Regions) == 0 {
		return domain.Region{}, 0, errors.New("resolve region: no regions configured")
	}

	var closest domain.Region
	minDistance := -1.0

	for _, region := range r.Regions {
		d := c.DistanceKm(region.Center)
		if minDistance < 0 || d < minDistance {
			minDistance = d
			closest = region
		}
	}

	if minDistance > r.MaxDistanceKm {
		return domain.Region{}, 0, fmt.Errorf(
			"resolve region: nearest center %q is %.1f km away: %w",
			closest.Name, minDistance, domain.ErrOutOfServiceArea,
		)
	}

	return closest, minDistance, nil
}
