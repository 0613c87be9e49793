package services

import (
	"fmt"
	"route-sheet-service/internal/domain"
)

// Deepest nesting accepted from callers outside the process.
const MaxRouteSheetDepth = 32

type CoordinatesInput struct {
	Lat float64
	Lon float64
}

type TripInput struct {
	Kind        string
	Weight      float64
	Volume      float64
	Origin      CoordinatesInput
	Destination CoordinatesInput
}

// RouteSheetInput is the plain-data form of a route sheet tree.
type RouteSheetInput struct {
	Trips       []TripInput
	RouteSheets []RouteSheetInput
}

// BuildRouteSheet converts an input tree into a domain RouteSheet.
// Validation errors name the offending element, e.g. "route_sheets[0].trips[2]".
func BuildRouteSheet(in RouteSheetInput) (*domain.RouteSheet, error) {
	sheet, err := buildRouteSheet(in, "route_sheet", 0)
	if err != nil {
		return nil, fmt.Errorf("build route sheet: %w", err)
	}
	return sheet, nil
}

func buildRouteSheet(in RouteSheetInput, path string, depth int) (*domain.RouteSheet, error) {
	if depth > MaxRouteSheetDepth {
		return nil, fmt.Errorf("%s: %w: nesting deeper than %d", path, domain.ErrInvalidArgument, MaxRouteSheetDepth)
	}

	sheet := domain.NewRouteSheet()

	for i, ti := range in.Trips {
		trip, err := buildTrip(ti)
		if err != nil {
			return nil, fmt.Errorf("%s.trips[%d]: %w", path, i, err)
		}
		sheet.AddTrip(trip)
	}

	for i, ci := range in.RouteSheets {
		child, err := buildRouteSheet(ci, fmt.Sprintf("%s.route_sheets[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		if err := sheet.AddRouteSheet(child); err != nil {
			return nil, fmt.Errorf("%s.route_sheets[%d]: %w", path, i, err)
		}
	}

	return sheet, nil
}

func buildTrip(in TripInput) (domain.Trip, error) {
	kind, err := domain.ParseTripKind(in.Kind)
	if err != nil {
		return nil, err
	}

	origin, err := domain.NewCoordinates(in.Origin.Lat, in.Origin.Lon)
	if err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	destination, err := domain.NewCoordinates(in.Destination.Lat, in.Destination.Lon)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	return domain.NewTrip(kind, in.Weight, in.Volume, origin, destination)
}
