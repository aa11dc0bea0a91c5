package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"rental-commute-service/internal/api/dto"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/services"
	"strings"
)

type ListingsHandler struct {
	Service *services.SearchService
}

// Search handles POST /listings/search. It is the single validation
// step turning the dynamic request body into a typed SearchRequest;
// downstream components assume well-typed input.
func (h *ListingsHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SearchListingsRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq, err := validateSearchRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.Service.Search(r.Context(), svcReq)
	if err != nil {
		h.writeSearchError(w, r, svcReq, err)
		return
	}

	res := dto.SearchListingsResponse{
		Page:          result.Page,
		PageSize:      result.PageSize,
		TotalListings: result.TotalListings,
		Results:       make([]dto.ListingResponse, 0, len(result.Listings)),
	}
	for _, l := range result.Listings {
		res.Results = append(res.Results, dto.ListingResponse{
			FormattedAddress: l.FormattedAddress,
			City:             l.City,
			Region:           l.Region,
			ListPrice:        l.ListPrice,
			Beds:             l.Beds,
			FullBaths:        l.FullBaths,
			HalfBaths:        l.HalfBaths,
			PropertyURL:      l.PropertyURL,
			PrimaryPhoto:     l.PrimaryPhoto,
			Latitude:         l.Location.Lat,
			Longitude:        l.Location.Lon,
			DistanceKm:       l.DistanceKm,
			CommuteMinutes:   l.CommuteMinutes,
			CommuteURL:       l.CommuteURL,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// validateSearchRequest applies defaults and range checks, producing
// the typed request the pipeline consumes.
func validateSearchRequest(req dto.SearchListingsRequest) (services.SearchRequest, error) {
	out := services.SearchRequest{
		Mode:      domain.ModeWalking,
		SortBy:    domain.SortByListPrice,
		Ascending: true,
		Page:      1,
		PageSize:  20,
	}

	address := strings.TrimSpace(req.UserAddress)
	if address == "" {
		return services.SearchRequest{}, errors.New("user_address is required")
	}
	out.UserAddress = address

	if req.CommuteType != nil {
		mode, err := domain.ParseTravelMode(*req.CommuteType)
		if err != nil {
			return services.SearchRequest{}, err
		}
		out.Mode = mode
	}

	if req.Page != nil {
		if *req.Page < 1 {
			return services.SearchRequest{}, fmt.Errorf("page must be >= 1, got %d", *req.Page)
		}
		out.Page = *req.Page
	}

	if req.PageSize != nil {
		if *req.PageSize < 1 || *req.PageSize > 50 {
			return services.SearchRequest{}, fmt.Errorf("page_size must be between 1 and 50, got %d", *req.PageSize)
		}
		out.PageSize = *req.PageSize
	}

	if req.SortBy != nil {
		key, err := domain.ParseSortKey(*req.SortBy)
		if err != nil {
			return services.SearchRequest{}, err
		}
		out.SortBy = key
	}

	if req.Ascending != nil {
		out.Ascending = *req.Ascending
	}

	if req.Filters != nil {
		out.Filters = domain.Filters{
			MinPrice: req.Filters.MinPrice,
			MaxPrice: req.Filters.MaxPrice,
			MinBeds:  req.Filters.MinBeds,
			MaxBeds:  req.Filters.MaxBeds,
			MinBaths: req.Filters.MinBaths,
			MaxBaths: req.Filters.MaxBaths,
		}
	}

	return out, nil
}

// writeSearchError maps pipeline failures onto status codes. Only
// this boundary inspects error identity; everything below returns
// typed failures.
func (h *ListingsHandler) writeSearchError(w http.ResponseWriter, r *http.Request, req services.SearchRequest, err error) {
	switch {
	case errors.Is(err, domain.ErrAddressNotFound):
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to find address: %s", req.UserAddress))
	case errors.Is(err, domain.ErrOutOfServiceArea):
		writeError(w, r, http.StatusBadRequest, "address is too far from supported regions")
	case errors.Is(err, domain.ErrNoRouteFound):
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("no %s route found to this destination", req.Mode))
	default:
		log.Printf("search listings failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
