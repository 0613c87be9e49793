package domain

import (
	"fmt"
	"math"
	"strings"
)

// TripKind names the pricing strategy applied to a trip.
type TripKind string

const (
	TripStandard TripKind = "standard"
	TripPriority TripKind = "priority"
	TripReturn   TripKind = "return"
)

// Flat price charged for a return leg regardless of load or distance.
const ReturnTripCost = 1000.0

func ParseTripKind(s string) (TripKind, error) {
	switch k := TripKind(strings.ToLower(strings.TrimSpace(s))); k {
	case TripStandard, TripPriority, TripReturn:
		return k, nil
	}
	return "", invalidArgument("unknown trip kind %q", s)
}

// Trip is a single origin to destination haul carrying a fixed load.
// Implementations are immutable and safe to share between route sheets.
type Trip interface {
	Kind() TripKind
	Weight() float64
	Volume() float64
	Origin() Coordinates
	Destination() Coordinates
	// Great-circle distance between origin and destination in km.
	Distance() float64
	Cost() float64
}

// Load and route shared by every trip kind.
type haul struct {
	weight      float64
	volume      float64
	origin      Coordinates
	destination Coordinates
}

func newHaul(weight, volume float64, origin, destination Coordinates) (haul, error) {
	if math.IsNaN(weight) || weight < 0 {
		return haul{}, invalidArgument("trip weight must be >= 0, got %v", weight)
	}
	if math.IsNaN(volume) || volume < 0 {
		return haul{}, invalidArgument("trip volume must be >= 0, got %v", volume)
	}
	return haul{weight: weight, volume: volume, origin: origin, destination: destination}, nil
}

func (h haul) Weight() float64          { return h.weight }
func (h haul) Volume() float64          { return h.volume }
func (h haul) Origin() Coordinates      { return h.origin }
func (h haul) Destination() Coordinates { return h.destination }
func (h haul) Distance() float64        { return DistanceKm(h.origin, h.destination) }

// StandardTrip is priced by weight and distance.
type StandardTrip struct{ haul }

func NewStandardTrip(weight, volume float64, origin, destination Coordinates) (*StandardTrip, error) {
	h, err := newHaul(weight, volume, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("new standard trip: %w", err)
	}
	return &StandardTrip{h}, nil
}

func (t *StandardTrip) Kind() TripKind { return TripStandard }

func (t *StandardTrip) Cost() float64 {
	return 2 * t.weight * t.Distance()
}

// PriorityTrip charges the greater of a weight-based and a volume-based rate.
type PriorityTrip struct{ haul }

func NewPriorityTrip(weight, volume float64, origin, destination Coordinates) (*PriorityTrip, error) {
	h, err := newHaul(weight, volume, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("new priority trip: %w", err)
	}
	return &PriorityTrip{h}, nil
}

func (t *PriorityTrip) Kind() TripKind { return TripPriority }

func (t *PriorityTrip) Cost() float64 {
	km := t.Distance()
	return math.Max(4*t.weight*km, 10*t.volume*km)
}

// ReturnTrip is a return leg billed at ReturnTripCost.
type ReturnTrip struct{ haul }

func NewReturnTrip(weight, volume float64, origin, destination Coordinates) (*ReturnTrip, error) {
	h, err := newHaul(weight, volume, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("new return trip: %w", err)
	}
	return &ReturnTrip{h}, nil
}

func (t *ReturnTrip) Kind() TripKind { return TripReturn }

func (t *ReturnTrip) Cost() float64 { return ReturnTripCost }

// NewTrip builds the trip variant named by kind.
func NewTrip(kind TripKind, weight, volume float64, origin, destination Coordinates) (Trip, error) {
	var (
		trip Trip
		err  error
	)

	// Assign only on success so a failed constructor never yields a typed-nil Trip.
	switch kind {
	case TripStandard:
		var t *StandardTrip
		if t, err = NewStandardTrip(weight, volume, origin, destination); err == nil {
			trip = t
		}
	case TripPriority:
		var t *PriorityTrip
		if t, err = NewPriorityTrip(weight, volume, origin, destination); err == nil {
			trip = t
		}
	case TripReturn:
		var t *ReturnTrip
		if t, err = NewReturnTrip(weight, volume, origin, destination); err == nil {
			trip = t
		}
	default:
		err = fmt.Errorf("new trip: %w", invalidArgument("unknown trip kind %q", kind))
	}

	if err != nil {
		return nil, err
	}
	return trip, nil
}
