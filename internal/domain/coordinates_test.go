package domain

import (
	"math"
	"testing"
)

func TestDistanceKmKnownPoints(t *testing.T) {
	sf := Coordinates{Lat: 37.7749, Lon: -122.4194}
	ny := Coordinates{Lat: 40.7128, Lon: -74.0060}

	got := sf.DistanceKm(ny)

	// Great-circle distance SF <-> NYC is roughly 4130 km.
	if got < 4100 || got > 4160 {
		t.Fatalf("DistanceKm(SF, NY) = %.1f, want ~4130", got)
	}

	// Symmetry.
	back := ny.DistanceKm(sf)
	if math.Abs(got-back) > 1e-9 {
		t.Fatalf("distance not symmetric: %.9f vs %.9f", got, back)
	}
}

func TestDistanceKmSamePoint(t *testing.T) {
	p := Coordinates{Lat: 47.6062, Lon: -122.3321}
	if d := p.DistanceKm(p); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestCoordinatesString(t *testing.T) {
	p := Coordinates{Lat: 47.6062, Lon: -122.3321}
	if got := p.String(); got != "47.606200,-122.332100" {
		t.Fatalf("String() = %q", got)
	}
}
