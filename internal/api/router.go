package api

import (
	"net/http"
	"rental-commute-service/internal/api/handlers"
	"rental-commute-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(search *services.SearchService) http.Handler {
	mux := http.NewServeMux()

	listingsHandler := &handlers.ListingsHandler{Service: search}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/listings/search", listingsHandler.Search)

	return loggingMiddleware(mux)
}
