package services

import (
	"context"
	"rental-commute-service/internal/adapters/commute"
	"rental-commute-service/internal/domain"
	"testing"
	"time"
)

var (
	originA = domain.Coordinates{Lat: 47.61, Lon: -122.33}
	originB = domain.Coordinates{Lat: 47.62, Lon: -122.34}
	originC = domain.Coordinates{Lat: 47.63, Lon: -122.35}

	testDestination = domain.Coordinates{Lat: 47.6062, Lon: -122.3321}
	testArrival     = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
)

func TestEnrichCommutesBatchesWhenSupported(t *testing.T) {
	provider := commute.NewMockCommuteMatrixProvider(map[domain.Coordinates]int{
		originA: 600,
		originB: 900,
		originC: 1200,
	})

	origins := []domain.Coordinates{originA, originB, originC}
	results := EnrichCommutes(context.Background(), provider, origins, testDestination, domain.ModeDriving, testArrival)

	if provider.Calls() != 1 {
		t.Fatalf("calls = %d, want 1 batched request", provider.Calls())
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, want := range []int{600, 900, 1200} {
		if results[i] == nil || results[i].DurationSeconds != want {
			t.Fatalf("results[%d] = %v, want %d seconds", i, results[i], want)
		}
	}
}

func TestEnrichCommutesTransitNeverBatches(t *testing.T) {
	provider := commute.NewMockCommuteMatrixProvider(map[domain.Coordinates]int{
		originA: 600,
		originB: 900,
	})

	origins := []domain.Coordinates{originA, originB}
	results := EnrichCommutes(context.Background(), provider, origins, testDestination, domain.ModeTransit, testArrival)

	if provider.Calls() != 2 {
		t.Fatalf("calls = %d, want one per origin", provider.Calls())
	}
	if results[0].DurationSeconds != 600 || results[1].DurationSeconds != 900 {
		t.Fatalf("results = [%v, %v]", results[0], results[1])
	}
}

func TestEnrichCommutesPreservesOrderWithAbsences(t *testing.T) {
	// originB has no route in either branch.
	durations := map[domain.Coordinates]int{
		originA: 300,
		originC: 500,
	}
	origins := []domain.Coordinates{originA, originB, originC}

	for _, mode := range []domain.TravelMode{domain.ModeWalking, domain.ModeTransit} {
		provider := commute.NewMockCommuteMatrixProvider(durations)
		results := EnrichCommutes(context.Background(), provider, origins, testDestination, mode, testArrival)

		if len(results) != 3 {
			t.Fatalf("mode %s: len(results) = %d, want 3", mode, len(results))
		}
		if results[0] == nil || results[0].DurationSeconds != 300 {
			t.Fatalf("mode %s: results[0] = %v, want 300", mode, results[0])
		}
		if results[1] != nil {
			t.Fatalf("mode %s: results[1] = %v, want nil for unroutable origin", mode, results[1])
		}
		if results[2] == nil || results[2].DurationSeconds != 500 {
			t.Fatalf("mode %s: results[2] = %v, want 500", mode, results[2])
		}
	}
}

func TestEnrichCommutesBatchFailureResolvesAllAbsent(t *testing.T) {
	provider := commute.NewMockCommuteMatrixProvider(map[domain.Coordinates]int{originA: 300})
	provider.Fail = true

	origins := []domain.Coordinates{originA, originB}
	results := EnrichCommutes(context.Background(), provider, origins, testDestination, domain.ModeDriving, testArrival)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for i, r := range results {
		if r != nil {
			t.Fatalf("results[%d] = %v, want nil after total batch failure", i, r)
		}
	}
}

func TestEnrichCommutesPerOriginFailureIsolated(t *testing.T) {
	provider := commute.NewMockCommuteProvider(map[domain.Coordinates]int{originA: 300})
	provider.Fail = true

	// Single-origin provider, so the fan-out branch runs even for a
	// batchable mode. Failures resolve to absence, never a panic.
	origins := []domain.Coordinates{originA, originB, originC}
	results := EnrichCommutes(context.Background(), provider, origins, testDestination, domain.ModeDriving, testArrival)

	for i, r := range results {
		if r != nil {
			t.Fatalf("results[%d] = %v, want nil", i, r)
		}
	}
	if provider.Calls() != 3 {
		t.Fatalf("calls = %d, want 3 isolated attempts", provider.Calls())
	}
}

func TestEnrichCommutesEmptyOrigins(t *testing.T) {
	provider := commute.NewMockCommuteMatrixProvider(nil)
	results := EnrichCommutes(context.Background(), provider, nil, testDestination, domain.ModeDriving, testArrival)

	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
	if provider.Calls() != 0 {
		t.Fatalf("calls = %d, want 0", provider.Calls())
	}
}
