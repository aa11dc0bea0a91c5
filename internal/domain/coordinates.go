package domain

import (
	"fmt"
	"math"
)

// Earth radius used by every distance computation in the service.
// The SQL-side haversine expression must use the same constant so that
// region thresholds, sort keys and display fields agree on kilometers.
const EarthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return "lat,lon" as expected by the mapping provider's query parameters.
func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}

// DistanceKm computes the great-circle distance to another point in
// kilometers using the haversine formula.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dLat := radians(other.Lat - c.Lat)
	dLon := radians(other.Lon - c.Lon)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(c.Lat))*math.Cos(radians(other.Lat))*math.Pow(math.Sin(dLon/2), 2)

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
