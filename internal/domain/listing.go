package domain

// Represents a single active rental listing.
// Rows are replaced wholesale by an out-of-band ingestion job; this
// service only ever reads them. Latitude and longitude are always
// present: region resolution and commute enrichment are impossible
// without them, so the ingestion job drops ungeocoded rows.
type Listing struct {
	ID               int
	FormattedAddress string
	City             string
	Region           string
	ListPrice        float64
	Beds             int
	FullBaths        int
	HalfBaths        int
	PropertyURL      string
	PrimaryPhoto     string
	Location         Coordinates

	// Great-circle distance from the searcher's location in kilometers.
	// Populated by the repository on every returned row, either inside
	// the SQL query (distance/commute sorts) or in application code for
	// the already-limited page.
	DistanceKm float64
}

// BathCount counts half baths as half a bathroom, matching the
// filter semantics of min_baths/max_baths.
func (l Listing) BathCount() float64 {
	return float64(l.FullBaths) + float64(l.HalfBaths)/2
}

// A Listing joined with a resolved commute. Listings whose commute
// could not be computed never become EnrichedListings.
type EnrichedListing struct {
	Listing
	CommuteSeconds int
	CommuteMinutes float64
	CommuteURL     string
}
