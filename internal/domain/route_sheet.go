package domain

import (
	"fmt"
	"sync"
)

// Serializes nesting edits across all sheets so two opposite AddRouteSheet
// calls cannot both pass the cycle check.
var nestingMu sync.Mutex

// RouteSheet groups trips and nested route sheets.
// Totals are recomputed on every call and always reflect the current contents.
type RouteSheet struct {
	mu     sync.RWMutex
	trips  []Trip
	sheets []*RouteSheet
}

func NewRouteSheet() *RouteSheet {
	return &RouteSheet{}
}

// Append a trip to the sheet.
func (s *RouteSheet) AddTrip(trip Trip) {
	if trip == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, trip)
}

// Nest another route sheet inside this one.
// Nesting that would make a sheet reachable from itself fails with ErrRouteSheetCycle.
func (s *RouteSheet) AddRouteSheet(child *RouteSheet) error {
	if child == nil {
		return fmt.Errorf("add route sheet: %w", invalidArgument("route sheet is nil"))
	}

	nestingMu.Lock()
	defer nestingMu.Unlock()

	if child == s || child.reaches(s) {
		return fmt.Errorf("add route sheet: %w", ErrRouteSheetCycle)
	}

	s.mu.Lock()
	s.sheets = append(s.sheets, child)
	s.mu.Unlock()
	return nil
}

// Trips returns a copy of the direct trips in insertion order.
func (s *RouteSheet) Trips() []Trip {
	trips, _ := s.snapshot()
	return trips
}

// RouteSheets returns a copy of the directly nested sheets in insertion order.
func (s *RouteSheet) RouteSheets() []*RouteSheet {
	_, sheets := s.snapshot()
	return sheets
}

func (s *RouteSheet) TotalCost() float64 {
	return s.sum(Trip.Cost)
}

func (s *RouteSheet) TotalWeight() float64 {
	return s.sum(Trip.Weight)
}

func (s *RouteSheet) TotalVolume() float64 {
	return s.sum(Trip.Volume)
}

// Direct trips first, then each nested sheet recursively.
func (s *RouteSheet) sum(value func(Trip) float64) float64 {
	trips, sheets := s.snapshot()

	total := 0.0
	for _, t := range trips {
		total += value(t)
	}
	for _, child := range sheets {
		total += child.sum(value)
	}
	return total
}

func (s *RouteSheet) snapshot() ([]Trip, []*RouteSheet) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trips := make([]Trip, len(s.trips))
	copy(trips, s.trips)
	sheets := make([]*RouteSheet, len(s.sheets))
	copy(sheets, s.sheets)
	return trips, sheets
}

// reaches reports whether target is nested anywhere below s.
func (s *RouteSheet) reaches(target *RouteSheet) bool {
	seen := map[*RouteSheet]struct{}{}
	stack := s.RouteSheets()

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n == target {
			return true
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		stack = append(stack, n.RouteSheets()...)
	}
	return false
}
