package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCapacityExceeded = errors.New("route sheet exceeds truck capacities")
	ErrRouteSheetCycle  = errors.New("route sheet nesting would create a cycle")
)

// CapacityExceededError reports the totals that failed a truck's capacity check.
type CapacityExceededError struct {
	Plate       string
	TotalWeight float64
	TotalVolume float64
	MaxWeight   float64
	MaxVolume   float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"assign route sheet: truck %s: %v (weight=%.2f/%.2f volume=%.2f/%.2f)",
		e.Plate, ErrCapacityExceeded, e.TotalWeight, e.MaxWeight, e.TotalVolume, e.MaxVolume,
	)
}

func (e *CapacityExceededError) Is(target error) bool { return target == ErrCapacityExceeded }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
