package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"route-sheet-service/internal/api/dto"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/platform/obs"
	"route-sheet-service/internal/ports"

	log "github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithFields(log.Fields{
			"req_id": obs.RequestID(r.Context()),
			"method": r.Method,
			"path":   r.URL.Path,
		}).WithError(err).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps domain and port errors to HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var capErr *domain.CapacityExceededError
	switch {
	case errors.As(err, &capErr):
		writeJSON(w, r, http.StatusConflict, dto.CapacityExceededResponse{
			Error:       domain.ErrCapacityExceeded.Error(),
			Plate:       capErr.Plate,
			TotalWeight: capErr.TotalWeight,
			TotalVolume: capErr.TotalVolume,
			MaxWeight:   capErr.MaxWeight,
			MaxVolume:   capErr.MaxVolume,
		})
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrRouteSheetCycle):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrTruckNotFound):
		writeError(w, r, http.StatusNotFound, "truck not found")
	case errors.Is(err, ports.ErrTruckExists):
		writeError(w, r, http.StatusConflict, "truck already registered")
	default:
		log.WithField("req_id", obs.RequestID(r.Context())).WithError(err).Error("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toTruckResponse(t *domain.Truck) dto.TruckResponse {
	res := dto.TruckResponse{
		Model:     t.Model(),
		Plate:     t.Plate(),
		MaxWeight: t.MaxWeight(),
		MaxVolume: t.MaxVolume(),
	}
	if sheet := t.AssignedRouteSheet(); sheet != nil {
		res.Assigned = true
		res.RouteSheet = toRouteSheetSummary(sheet)
	}
	return res
}

func toRouteSheetSummary(sheet *domain.RouteSheet) *dto.RouteSheetSummary {
	return &dto.RouteSheetSummary{
		Trips:       len(sheet.Trips()),
		RouteSheets: len(sheet.RouteSheets()),
		TotalCost:   sheet.TotalCost(),
		TotalWeight: sheet.TotalWeight(),
		TotalVolume: sheet.TotalVolume(),
	}
}
