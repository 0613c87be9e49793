package domain

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

// Truck holds fixed capacity limits and at most one assigned route sheet.
// The truck references the sheet; it does not own the sheet's trips.
type Truck struct {
	model     string
	plate     string
	maxWeight float64
	maxVolume float64

	mu       sync.RWMutex
	assigned *RouteSheet
}

func NewTruck(model, plate string, maxWeight, maxVolume float64) (*Truck, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, fmt.Errorf("new truck: %w", invalidArgument("plate must be non-empty"))
	}
	if !(maxWeight > 0) || math.IsInf(maxWeight, 1) {
		return nil, fmt.Errorf("new truck %s: %w", plate, invalidArgument("max weight must be > 0, got %v", maxWeight))
	}
	if !(maxVolume > 0) || math.IsInf(maxVolume, 1) {
		return nil, fmt.Errorf("new truck %s: %w", plate, invalidArgument("max volume must be > 0, got %v", maxVolume))
	}

	return &Truck{
		model:     strings.TrimSpace(model),
		plate:     plate,
		maxWeight: maxWeight,
		maxVolume: maxVolume,
	}, nil
}

func (t *Truck) Model() string      { return t.model }
func (t *Truck) Plate() string      { return t.plate }
func (t *Truck) MaxWeight() float64 { return t.maxWeight }
func (t *Truck) MaxVolume() float64 { return t.maxVolume }

// CheckCapacity validates a route sheet against the truck's limits without assigning it.
// Totals equal to a limit are accepted.
func (t *Truck) CheckCapacity(sheet *RouteSheet) error {
	if sheet == nil {
		return fmt.Errorf("check capacity: truck %s: %w", t.plate, invalidArgument("route sheet is nil"))
	}

	weight := sheet.TotalWeight()
	volume := sheet.TotalVolume()
	if weight > t.maxWeight || volume > t.maxVolume {
		return &CapacityExceededError{
			Plate:       t.plate,
			TotalWeight: weight,
			TotalVolume: volume,
			MaxWeight:   t.maxWeight,
			MaxVolume:   t.maxVolume,
		}
	}
	return nil
}

// Assign a route sheet to the truck, replacing any previous assignment.
// On failure the current assignment is left untouched.
func (t *Truck) AssignRouteSheet(sheet *RouteSheet) error {
	if err := t.CheckCapacity(sheet); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.assigned = sheet
	return nil
}

// AssignedRouteSheet returns nil while the truck is unassigned.
func (t *Truck) AssignedRouteSheet() *RouteSheet {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.assigned
}
