package domain

import "errors"

// Failure conditions the HTTP boundary maps to status codes.
// Components wrap these with context; handlers match with errors.Is.
var (
	// The geocoder could not resolve the searcher's address.
	ErrAddressNotFound = errors.New("address not found")

	// The address resolved, but lies beyond the admission threshold of
	// every supported region.
	ErrOutOfServiceArea = errors.New("address is too far from supported regions")

	// Every listing on the requested page failed commute enrichment.
	// Usually means the destination is unreachable by the chosen mode,
	// not a transient provider fault.
	ErrNoRouteFound = errors.New("no commute route found for any listing")
)
