package services

var (
	buenosAires = CoordinatesInput{Lat: -34.6037, Lon: -58.3816}
	rosario     = CoordinatesInput{Lat: -32.9468, Lon: -60.6393}
)

func standardTrip(weight, volume float64) TripInput {
	return TripInput{Kind: "standard", Weight: weight, Volume: volume, Origin: buenosAires, Destination: rosario}
}

func priorityTrip(weight, volume float64) TripInput {
	return TripInput{Kind: "priority", Weight: weight, Volume: volume, Origin: buenosAires, Destination: rosario}
}
