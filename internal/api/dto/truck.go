package dto

type CreateTruckRequest struct {
	Model     string  `json:"model"`
	Plate     string  `json:"plate"`
	MaxWeight float64 `json:"max_weight"`
	MaxVolume float64 `json:"max_volume"`
}

type AssignRouteSheetRequest struct {
	RouteSheet RouteSheetRequest `json:"route_sheet"`
}

type RouteSheetSummary struct {
	Trips       int     `json:"trips"`
	RouteSheets int     `json:"route_sheets"`
	TotalCost   float64 `json:"total_cost"`
	TotalWeight float64 `json:"total_weight"`
	TotalVolume float64 `json:"total_volume"`
}

type TruckResponse struct {
	Model      string             `json:"model"`
	Plate      string             `json:"plate"`
	MaxWeight  float64            `json:"max_weight"`
	MaxVolume  float64            `json:"max_volume"`
	Assigned   bool               `json:"assigned"`
	RouteSheet *RouteSheetSummary `json:"route_sheet,omitempty"`
}

type ListTrucksResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

// Body of a 409 returned when a route sheet does not fit the truck.
type CapacityExceededResponse struct {
	Error       string  `json:"error"`
	Plate       string  `json:"plate"`
	TotalWeight float64 `json:"total_weight"`
	TotalVolume float64 `json:"total_volume"`
	MaxWeight   float64 `json:"max_weight"`
	MaxVolume   float64 `json:"max_volume"`
}
