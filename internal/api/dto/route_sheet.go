package dto

type CoordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type TripRequest struct {
	Kind        string             `json:"kind"`
	Weight      float64            `json:"weight"`
	Volume      float64            `json:"volume"`
	Origin      CoordinatesRequest `json:"origin"`
	Destination CoordinatesRequest `json:"destination"`
}

type RouteSheetRequest struct {
	Trips       []TripRequest       `json:"trips"`
	RouteSheets []RouteSheetRequest `json:"route_sheets"`
}

type CapacityRequest struct {
	MaxWeight float64 `json:"max_weight"`
	MaxVolume float64 `json:"max_volume"`
}

type QuoteRequest struct {
	RouteSheet RouteSheetRequest `json:"route_sheet"`
	Truck      *CapacityRequest  `json:"truck,omitempty"`
}

type TripQuoteResponse struct {
	Path               string  `json:"path"`
	Kind               string  `json:"kind"`
	OriginGeohash      string  `json:"origin_geohash"`
	DestinationGeohash string  `json:"destination_geohash"`
	DistanceKm         float64 `json:"distance_km"`
	Weight             float64 `json:"weight"`
	Volume             float64 `json:"volume"`
	Cost               float64 `json:"cost"`
}

type FitResponse struct {
	MaxWeight float64 `json:"max_weight"`
	MaxVolume float64 `json:"max_volume"`
	Fits      bool    `json:"fits"`
}

type QuoteResponse struct {
	QuoteID     string              `json:"quote_id"`
	Trips       []TripQuoteResponse `json:"trips"`
	TotalCost   float64             `json:"total_cost"`
	TotalWeight float64             `json:"total_weight"`
	TotalVolume float64             `json:"total_volume"`
	Fit         *FitResponse        `json:"fit,omitempty"`
}
