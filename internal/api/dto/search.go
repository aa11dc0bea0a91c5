package dto

// Raw filter bounds. Pointer fields distinguish "absent" from zero;
// a non-numeric bound fails JSON decoding before validation runs.
type FiltersRequest struct {
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
	MinBeds  *int     `json:"min_beds"`
	MaxBeds  *int     `json:"max_beds"`
	MinBaths *float64 `json:"min_baths"`
	MaxBaths *float64 `json:"max_baths"`
}

// Raw search request body. Optional fields are pointers so defaults
// apply only when the caller omitted them.
type SearchListingsRequest struct {
	UserAddress string          `json:"user_address"`
	CommuteType *string         `json:"commute_type"`
	Page        *int            `json:"page"`
	PageSize    *int            `json:"page_size"`
	Filters     *FiltersRequest `json:"filters"`
	SortBy      *string         `json:"sort_by"`
	Ascending   *bool           `json:"ascending"`
}

type ListingResponse struct {
	FormattedAddress string  `json:"formatted_address"`
	City             string  `json:"city"`
	Region           string  `json:"region"`
	ListPrice        float64 `json:"list_price"`
	Beds             int     `json:"beds"`
	FullBaths        int     `json:"full_baths"`
	HalfBaths        int     `json:"half_baths"`
	PropertyURL      string  `json:"property_url"`
	PrimaryPhoto     string  `json:"primary_photo"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DistanceKm       float64 `json:"distance_km"`
	CommuteMinutes   float64 `json:"commute_minutes"`
	CommuteURL       string  `json:"commute_url"`
}

type SearchListingsResponse struct {
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalListings int               `json:"total_listings"`
	Results       []ListingResponse `json:"results"`
}
