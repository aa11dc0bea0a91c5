package domain

// A supported metro area with a fixed center coordinate.
// Listings are assigned a region once at ingestion time; searches
// match the region name exactly rather than running a radius query.
type Region struct {
	Name   string
	Center Coordinates
}

// Metro areas the service currently covers. Order matters: when two
// centers are equally close, the first one wins.
func DefaultRegions() []Region {
	return []Region{
		{Name: "San Francisco Bay Area, CA", Center: Coordinates{Lat: 37.7749, Lon: -122.4194}},
		{Name: "New York, NY", Center: Coordinates{Lat: 40.7128, Lon: -74.0060}},
		{Name: "Seattle, WA", Center: Coordinates{Lat: 47.6062, Lon: -122.3321}},
		{Name: "Toronto, ON, Canada", Center: Coordinates{Lat: 43.6532, Lon: -79.3832}},
		{Name: "Austin, TX", Center: Coordinates{Lat: 30.2672, Lon: -97.7431}},
	}
}
