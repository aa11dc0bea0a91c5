package domain

import "fmt"

// How the searcher travels to work. Determines both the provider
// operation used for enrichment and whether origins can be batched
// into a single request.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeBicycling TravelMode = "bicycling"
	ModeWalking   TravelMode = "walking"
	ModeTransit   TravelMode = "transit"
)

// ParseTravelMode validates a raw commute_type value.
func ParseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case ModeDriving, ModeBicycling, ModeWalking, ModeTransit:
		return TravelMode(s), nil
	}
	return "", fmt.Errorf("commute_type must be one of driving, bicycling, walking, transit; got %q", s)
}

// SupportsBatching reports whether the provider accepts multiple
// origins in one request for this mode. Transit routes are only
// available through the single-origin directions operation.
func (m TravelMode) SupportsBatching() bool {
	return m != ModeTransit
}

// ArrivalTimeRelevant reports whether an arrival-time parameter is
// meaningful for the mode's deep link (walking and cycling durations
// do not depend on when you arrive).
func (m TravelMode) ArrivalTimeRelevant() bool {
	return m == ModeDriving || m == ModeTransit
}

// The attribute a search is ordered by.
type SortKey string

const (
	SortByListPrice      SortKey = "list_price"
	SortByBeds           SortKey = "beds"
	SortByBaths          SortKey = "baths"
	SortByDistance       SortKey = "distance"
	SortByCommuteSeconds SortKey = "commute_seconds"
	SortByCommuteTime    SortKey = "commute_time"
)

// ParseSortKey validates a raw sort_by value.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByListPrice, SortByBeds, SortByBaths,
		SortByDistance, SortByCommuteSeconds, SortByCommuteTime:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("sort_by must be one of list_price, beds, baths, distance, commute_seconds, commute_time; got %q", s)
}

// UsesDistance reports whether ordering requires the store to compute
// the great-circle distance inside the query. Commute sorts use
// distance as their proxy: actual durations only exist after the page
// has been fetched and enriched.
func (k SortKey) UsesDistance() bool {
	return k == SortByDistance || k == SortByCommuteSeconds || k == SortByCommuteTime
}

// Optional inclusive bounds on listing attributes. A nil bound adds
// no constraint. Bath bounds apply to full_baths + half_baths/2.
type Filters struct {
	MinPrice *float64
	MaxPrice *float64
	MinBeds  *int
	MaxBeds  *int
	MinBaths *float64
	MaxBaths *float64
}
