package ports

import (
	"context"
	"errors"
	"route-sheet-service/internal/domain"
)

var (
	ErrTruckNotFound = errors.New("truck not found")
	ErrTruckExists   = errors.New("truck already registered")
)

// Port: a boundary for storing and retrieving Truck aggregates by plate.
type TruckRepository interface {
	// Register a new truck; fails with ErrTruckExists on a duplicate plate.
	Save(ctx context.Context, truck *domain.Truck) error
	// Fetch a truck by plate; fails with ErrTruckNotFound.
	Get(ctx context.Context, plate string) (*domain.Truck, error)
	// Return every registered truck ordered by plate.
	List(ctx context.Context) ([]*domain.Truck, error)
}
