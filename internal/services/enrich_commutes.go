package services

import (
	"context"
	"log"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/obs"
	"rental-commute-service/internal/ports"
	"sync"
	"time"
)

// Caps concurrent single-origin provider calls for one enrichment.
const maxInflightRoutes = 5

// EnrichCommutes fetches a commute duration for every origin to one
// destination. The result slice is origin-ordered and always has
// len(origins) entries; a nil entry means no route could be computed
// for that origin.
//
// Batchable modes issue exactly one multi-origin request when the
// provider supports it. Transit (and any provider without matrix
// support) falls back to concurrent per-origin requests.
//
// Failures never abort the page: a provider error for one origin
// resolves to nil for that origin, and a failed batched request
// resolves to nil for every origin in it.
func EnrichCommutes(
	ctx context.Context,
	provider ports.CommuteProvider,
	origins []domain.Coordinates,
	destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) []*ports.CommuteResult {
	defer obs.Time(ctx, "enrich.commutes")(nil)

	results := make([]*ports.CommuteResult, len(origins))
	if len(origins) == 0 {
		return results
	}

	if mp, ok := provider.(ports.CommuteMatrixProvider); ok && mode.SupportsBatching() {
		batch, err := mp.RouteDurations(ctx, origins, destination, mode, arriveBy)
		if err != nil {
			log.Printf("commute matrix request failed mode=%s origins=%d err=%v", mode, len(origins), err)
			return results
		}
		if len(batch) != len(origins) {
			log.Printf("commute matrix size mismatch mode=%s want=%d got=%d", mode, len(origins), len(batch))
			return results
		}
		copy(results, batch)
		return results
	}

	sem := make(chan struct{}, maxInflightRoutes)
	var wg sync.WaitGroup

	for i, origin := range origins {
		wg.Add(1)
		go func(i int, origin domain.Coordinates) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			r, err := provider.RouteDuration(ctx, origin, destination, mode, arriveBy)
			if err != nil {
				log.Printf("commute lookup failed origin=%s mode=%s err=%v", origin, mode, err)
				return
			}
			results[i] = r
		}(i, origin)
	}

	wg.Wait()
	return results
}
