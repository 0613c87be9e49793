package handlers

import (
	"errors"
	"net/http"
	"route-sheet-service/internal/api/dto"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/platform/metrics"
	"route-sheet-service/internal/platform/obs"
	"route-sheet-service/internal/ports"
	"route-sheet-service/internal/services"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TruckHandler exposes the fleet and route sheet assignment.
type TruckHandler struct {
	Repo    ports.TruckRepository
	Metrics *metrics.Collector
}

func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.Repo.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListTrucksResponse{Trucks: make([]dto.TruckResponse, 0, len(trucks))}
	for _, t := range trucks {
		res.Trucks = append(res.Trucks, toTruckResponse(t))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTruckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	truck, err := services.RegisterTruck(r.Context(), h.Repo, req.Model, req.Plate, req.MaxWeight, req.MaxVolume)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if trucks, err := h.Repo.List(r.Context()); err == nil {
		h.Metrics.SetTrucks(len(trucks))
	}

	w.Header().Set("Location", "/trucks/"+truck.Plate())
	writeJSON(w, r, http.StatusCreated, toTruckResponse(truck))
}

func (h *TruckHandler) Get(w http.ResponseWriter, r *http.Request) {
	truck, err := h.Repo.Get(r.Context(), mux.Vars(r)["plate"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toTruckResponse(truck))
}

// AssignRouteSheet replaces the truck's route sheet when it fits the truck's capacities.
func (h *TruckHandler) AssignRouteSheet(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignRouteSheetRequest
	if !decodeJSON(w, r, &req) {
		h.Metrics.RecordAssignment(metrics.OutcomeInvalid)
		return
	}

	plate := mux.Vars(r)["plate"]
	truck, err := services.AssignRouteSheet(r.Context(), h.Repo, plate, req.RouteSheet.Input())
	if err != nil {
		h.Metrics.RecordAssignment(assignmentOutcome(err))
		writeServiceError(w, r, err)
		return
	}
	h.Metrics.RecordAssignment(metrics.OutcomeAssigned)

	log.WithFields(log.Fields{
		"req_id":       obs.RequestID(r.Context()),
		"plate":        truck.Plate(),
		"total_weight": truck.AssignedRouteSheet().TotalWeight(),
		"total_volume": truck.AssignedRouteSheet().TotalVolume(),
	}).Info("route sheet assigned")

	writeJSON(w, r, http.StatusOK, toTruckResponse(truck))
}

func (h *TruckHandler) GetRouteSheet(w http.ResponseWriter, r *http.Request) {
	truck, err := h.Repo.Get(r.Context(), mux.Vars(r)["plate"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sheet := truck.AssignedRouteSheet()
	if sheet == nil {
		writeError(w, r, http.StatusNotFound, "truck has no route sheet assigned")
		return
	}
	writeJSON(w, r, http.StatusOK, toRouteSheetSummary(sheet))
}

func assignmentOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return metrics.OutcomeCapacityExceeded
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, ports.ErrTruckNotFound):
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}
