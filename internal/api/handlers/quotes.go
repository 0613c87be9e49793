package handlers

import (
	"net/http"
	"route-sheet-service/internal/api/dto"
	"route-sheet-service/internal/platform/metrics"
	"route-sheet-service/internal/services"
)

// QuoteHandler prices route sheets without touching the fleet.
type QuoteHandler struct {
	Metrics *metrics.Collector
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := services.QuoteRouteSheet(r.Context(), req.RouteSheet.Input(), req.Truck.Limits())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.Metrics.RecordQuote(q.TotalCost)

	writeJSON(w, r, http.StatusOK, dto.NewQuoteResponse(q))
}
