package services

import "time"

// NextArrival returns the next upcoming occurrence of the given hour
// in now's location: today at hour:00 if that is still ahead,
// otherwise the same time tomorrow. Both enrichment branches and the
// deep link use this value so commute durations stay comparable.
func NextArrival(now time.Time, hour int) time.Time {
	arrival := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !now.Before(arrival) {
		arrival = arrival.AddDate(0, 0, 1)
	}
	return arrival
}
