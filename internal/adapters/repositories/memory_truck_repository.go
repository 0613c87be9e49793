package repositories

import (
	"context"
	"errors"
	"fmt"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/ports"
	"sort"
	"strings"
	"sync"
)

// In-memory implementation of the TruckRepository port.
// Plates are matched case-insensitively.
type MemoryTruckRepository struct {
	mu     sync.RWMutex
	trucks map[string]*domain.Truck
}

func NewMemoryTruckRepository() *MemoryTruckRepository {
	return &MemoryTruckRepository{trucks: make(map[string]*domain.Truck)}
}

func (r *MemoryTruckRepository) Save(ctx context.Context, truck *domain.Truck) error {
	if truck == nil {
		return errors.New("save truck: truck is nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("save truck %s: %w", truck.Plate(), err)
	}

	key := plateKey(truck.Plate())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trucks[key]; ok {
		return fmt.Errorf("save truck %s: %w", truck.Plate(), ports.ErrTruckExists)
	}
	r.trucks[key] = truck
	return nil
}

func (r *MemoryTruckRepository) Get(ctx context.Context, plate string) (*domain.Truck, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get truck %s: %w", plate, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	truck, ok := r.trucks[plateKey(plate)]
	if !ok {
		return nil, fmt.Errorf("get truck %q: %w", plate, ports.ErrTruckNotFound)
	}
	return truck, nil
}

func (r *MemoryTruckRepository) List(ctx context.Context) ([]*domain.Truck, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}

	r.mu.RLock()
	trucks := make([]*domain.Truck, 0, len(r.trucks))
	for _, t := range r.trucks {
		trucks = append(trucks, t)
	}
	r.mu.RUnlock()

	sort.Slice(trucks, func(i, j int) bool { return trucks[i].Plate() < trucks[j].Plate() })
	return trucks, nil
}

func plateKey(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
