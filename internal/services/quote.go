package services

import (
	"context"
	"fmt"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/platform/obs"

	"github.com/google/uuid"
)

// Geohash length used to label trip endpoints in quotes (~150 m cells).
const QuoteGeohashPrecision = 7

type TripQuote struct {
	Path               string
	Kind               domain.TripKind
	OriginGeohash      string
	DestinationGeohash string
	DistanceKm         float64
	Weight             float64
	Volume             float64
	Cost               float64
}

// CapacityLimits describes a prospective truck to check a quote against.
type CapacityLimits struct {
	MaxWeight float64
	MaxVolume float64
}

type FitResult struct {
	CapacityLimits
	Fits bool
}

// Quote is the priced breakdown of a route sheet.
type Quote struct {
	ID          uuid.UUID
	Trips       []TripQuote
	TotalCost   float64
	TotalWeight float64
	TotalVolume float64
	Fit         *FitResult
}

// QuoteRouteSheet prices a route sheet without registering or assigning it.
// When limits is non-nil the quote also reports whether the sheet fits them.
func QuoteRouteSheet(ctx context.Context, in RouteSheetInput, limits *CapacityLimits) (_ *Quote, err error) {
	defer obs.Time(ctx, "quote.RouteSheet")(&err)

	sheet, err := BuildRouteSheet(in)
	if err != nil {
		return nil, fmt.Errorf("quote route sheet: %w", err)
	}

	q := &Quote{
		ID:          uuid.New(),
		Trips:       collectTripQuotes(sheet, "route_sheet", nil),
		TotalCost:   sheet.TotalCost(),
		TotalWeight: sheet.TotalWeight(),
		TotalVolume: sheet.TotalVolume(),
	}

	if limits != nil {
		truck, err := domain.NewTruck("", "quote", limits.MaxWeight, limits.MaxVolume)
		if err != nil {
			return nil, fmt.Errorf("quote route sheet: capacity limits: %w", err)
		}
		q.Fit = &FitResult{
			CapacityLimits: *limits,
			Fits:           truck.CheckCapacity(sheet) == nil,
		}
	}

	return q, nil
}

// Depth-first, direct trips before nested sheets, matching the summation order.
func collectTripQuotes(sheet *domain.RouteSheet, path string, out []TripQuote) []TripQuote {
	for i, t := range sheet.Trips() {
		out = append(out, TripQuote{
			Path:               fmt.Sprintf("%s.trips[%d]", path, i),
			Kind:               t.Kind(),
			OriginGeohash:      t.Origin().Geohash(QuoteGeohashPrecision),
			DestinationGeohash: t.Destination().Geohash(QuoteGeohashPrecision),
			DistanceKm:         t.Distance(),
			Weight:             t.Weight(),
			Volume:             t.Volume(),
			Cost:               t.Cost(),
		})
	}
	for i, child := range sheet.RouteSheets() {
		out = collectTripQuotes(child, fmt.Sprintf("%s.route_sheets[%d]", path, i), out)
	}
	return out
}
