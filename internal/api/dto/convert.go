package dto

import "route-sheet-service/internal/services"

// Input converts the request tree into the service input.
func (r RouteSheetRequest) Input() services.RouteSheetInput {
	in := services.RouteSheetInput{
		Trips:       make([]services.TripInput, 0, len(r.Trips)),
		RouteSheets: make([]services.RouteSheetInput, 0, len(r.RouteSheets)),
	}
	for _, t := range r.Trips {
		in.Trips = append(in.Trips, services.TripInput{
			Kind:        t.Kind,
			Weight:      t.Weight,
			Volume:      t.Volume,
			Origin:      services.CoordinatesInput{Lat: t.Origin.Lat, Lon: t.Origin.Lon},
			Destination: services.CoordinatesInput{Lat: t.Destination.Lat, Lon: t.Destination.Lon},
		})
	}
	for _, child := range r.RouteSheets {
		in.RouteSheets = append(in.RouteSheets, child.Input())
	}
	return in
}

func (r *CapacityRequest) Limits() *services.CapacityLimits {
	if r == nil {
		return nil
	}
	return &services.CapacityLimits{MaxWeight: r.MaxWeight, MaxVolume: r.MaxVolume}
}

func NewQuoteResponse(q *services.Quote) QuoteResponse {
	res := QuoteResponse{
		QuoteID:     q.ID.String(),
		Trips:       make([]TripQuoteResponse, 0, len(q.Trips)),
		TotalCost:   q.TotalCost,
		TotalWeight: q.TotalWeight,
		TotalVolume: q.TotalVolume,
	}
	for _, t := range q.Trips {
		res.Trips = append(res.Trips, TripQuoteResponse{
			Path:               t.Path,
			Kind:               string(t.Kind),
			OriginGeohash:      t.OriginGeohash,
			DestinationGeohash: t.DestinationGeohash,
			DistanceKm:         t.DistanceKm,
			Weight:             t.Weight,
			Volume:             t.Volume,
			Cost:               t.Cost,
		})
	}
	if q.Fit != nil {
		res.Fit = &FitResponse{
			MaxWeight: q.Fit.MaxWeight,
			MaxVolume: q.Fit.MaxVolume,
			Fits:      q.Fit.Fits,
		}
	}
	return res
}
