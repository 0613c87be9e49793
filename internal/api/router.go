package api

import (
	"net/http"
	"route-sheet-service/internal/api/handlers"
	"route-sheet-service/internal/platform/metrics"
	"route-sheet-service/internal/ports"

	"github.com/gorilla/mux"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// A nil collector disables /metrics.
func NewRouter(repo ports.TruckRepository, collector *metrics.Collector) http.Handler {
	r := mux.NewRouter()

	quoteHandler := &handlers.QuoteHandler{Metrics: collector}
	truckHandler := &handlers.TruckHandler{Repo: repo, Metrics: collector}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/quotes", quoteHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/trucks", truckHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/trucks", truckHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/trucks/{plate}", truckHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/trucks/{plate}/route-sheet", truckHandler.GetRouteSheet).Methods(http.MethodGet)
	r.HandleFunc("/trucks/{plate}/route-sheet", truckHandler.AssignRouteSheet).Methods(http.MethodPut)

	if collector != nil {
		r.Handle("/metrics", collector.Handler()).Methods(http.MethodGet)
	}

	r.Use(requestIDMiddleware, loggingMiddleware(collector))
	return r
}
