package commute

import (
	"context"
	"errors"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/ports"
	"sync"
	"time"
)

// MockCommuteProvider resolves commutes from a fixed origin->seconds
// table for tests. An origin absent from the table has no route.
// The enrichment engine calls it from concurrent goroutines, so the
// call counter is guarded.
type MockCommuteProvider struct {
	mu sync.Mutex
	m  map[domain.Coordinates]int

	// Fail makes every call error, simulating a provider outage.
	Fail bool

	calls int
}

func NewMockCommuteProvider(durations map[domain.Coordinates]int) *MockCommuteProvider {
	return &MockCommuteProvider{m: durations}
}

// Calls reports how many provider requests were made (a batched call
// counts once).
func (p *MockCommuteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *MockCommuteProvider) RouteDuration(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) (*ports.CommuteResult, error) {
	p.mu.Lock()
	p.calls++
	seconds, ok := p.m[origin]
	fail := p.Fail
	p.mu.Unlock()

	if fail {
		return nil, errors.New("mock provider failure")
	}
	if !ok {
		return nil, nil
	}
	return &ports.CommuteResult{DurationSeconds: seconds}, nil
}

// Matrix-capable variant, for exercising the batched branch.
type MockCommuteMatrixProvider struct {
	MockCommuteProvider
}

func NewMockCommuteMatrixProvider(durations map[domain.Coordinates]int) *MockCommuteMatrixProvider {
	return &MockCommuteMatrixProvider{MockCommuteProvider{m: durations}}
}

func (p *MockCommuteMatrixProvider) RouteDurations(
	ctx context.Context,
	origins []domain.Coordinates,
	destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) ([]*ports.CommuteResult, error) {
	p.mu.Lock()
	p.calls++
	fail := p.Fail
	p.mu.Unlock()

	if fail {
		return nil, errors.New("mock provider failure")
	}

	out := make([]*ports.CommuteResult, len(origins))
	for i, o := range origins {
		if seconds, ok := p.m[o]; ok {
			out[i] = &ports.CommuteResult{DurationSeconds: seconds}
		}
	}
	return out, nil
}
