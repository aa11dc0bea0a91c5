package domain

import "testing"

func TestParseTravelMode(t *testing.T) {
	for _, valid := range []string{"driving", "bicycling", "walking", "transit"} {
		if _, err := ParseTravelMode(valid); err != nil {
			t.Errorf("ParseTravelMode(%q) unexpected error: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "DRIVING", "flying", "drive"} {
		if _, err := ParseTravelMode(invalid); err == nil {
			t.Errorf("ParseTravelMode(%q) expected error", invalid)
		}
	}
}

func TestTravelModeBatching(t *testing.T) {
	if ModeTransit.SupportsBatching() {
		t.Error("transit must not batch: the provider has no multi-origin transit operation")
	}
	for _, m := range []TravelMode{ModeDriving, ModeBicycling, ModeWalking} {
		if !m.SupportsBatching() {
			t.Errorf("%s should support batching", m)
		}
	}
}

func TestTravelModeArrivalRelevance(t *testing.T) {
	if !ModeDriving.ArrivalTimeRelevant() || !ModeTransit.ArrivalTimeRelevant() {
		t.Error("arrival time should matter for driving and transit")
	}
	if ModeWalking.ArrivalTimeRelevant() || ModeBicycling.ArrivalTimeRelevant() {
		t.Error("arrival time should not matter for walking or bicycling")
	}
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"list_price", "beds", "baths", "distance", "commute_seconds", "commute_time"} {
		if _, err := ParseSortKey(valid); err != nil {
			t.Errorf("ParseSortKey(%q) unexpected error: %v", valid, err)
		}
	}

	if _, err := ParseSortKey("price"); err == nil {
		t.Error("ParseSortKey(\"price\") expected error")
	}
}

func TestSortKeyUsesDistance(t *testing.T) {
	for _, k := range []SortKey{SortByDistance, SortByCommuteSeconds, SortByCommuteTime} {
		if !k.UsesDistance() {
			t.Errorf("%s should force query-time distance computation", k)
		}
	}
	for _, k := range []SortKey{SortByListPrice, SortByBeds, SortByBaths} {
		if k.UsesDistance() {
			t.Errorf("%s should not force query-time distance computation", k)
		}
	}
}

func TestBathCount(t *testing.T) {
	l := Listing{FullBaths: 2, HalfBaths: 1}
	if got := l.BathCount(); got != 2.5 {
		t.Fatalf("BathCount() = %v, want 2.5", got)
	}
}
