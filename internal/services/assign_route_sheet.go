package services

import (
	"context"
	"errors"
	"fmt"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/platform/obs"
	"route-sheet-service/internal/ports"
)

// AssignRouteSheet builds a route sheet and assigns it to the registered truck with the given plate.
//
// Capacity failures are returned as *domain.CapacityExceededError and leave the
// truck's current assignment in place.
func AssignRouteSheet(
	ctx context.Context,
	repo ports.TruckRepository,
	plate string,
	in RouteSheetInput,
) (_ *domain.Truck, err error) {
	defer obs.Time(ctx, "truck.AssignRouteSheet")(&err)

	if repo == nil {
		return nil, errors.New("assign route sheet: repository is nil")
	}

	truck, err := repo.Get(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("assign route sheet: %w", err)
	}

	sheet, err := BuildRouteSheet(in)
	if err != nil {
		return nil, fmt.Errorf("assign route sheet: %w", err)
	}

	if err := truck.AssignRouteSheet(sheet); err != nil {
		return nil, err
	}

	return truck, nil
}

// RegisterTruck validates and stores a new truck.
func RegisterTruck(
	ctx context.Context,
	repo ports.TruckRepository,
	model, plate string,
	maxWeight, maxVolume float64,
) (_ *domain.Truck, err error) {
	defer obs.Time(ctx, "truck.Register")(&err)

	truck, err := domain.NewTruck(model, plate, maxWeight, maxVolume)
	if err != nil {
		return nil, fmt.Errorf("register truck: %w", err)
	}

	if err := repo.Save(ctx, truck); err != nil {
		return nil, fmt.Errorf("register truck: %w", err)
	}

	return truck, nil
}
