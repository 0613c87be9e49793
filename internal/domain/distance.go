package domain

import "math"

// Nautical miles per degree times statute miles per nautical mile times km per statute mile.
const kmPerArcDegree = 60 * 1.1515 * 1.609344

// GreatCircleDistanceKm returns the spherical law of cosines distance between two points,
// rounded half away from zero to two decimals.
func GreatCircleDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	theta := lon1 - lon2
	cosArg := math.Sin(deg2rad(lat1))*math.Sin(deg2rad(lat2)) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Cos(deg2rad(theta))

	// Identical points can push the argument past 1 and make Acos return NaN.
	cosArg = math.Max(-1, math.Min(1, cosArg))

	km := rad2deg(math.Acos(cosArg)) * kmPerArcDegree
	return math.Round(km*100) / 100
}

// DistanceKm is GreatCircleDistanceKm over two Coordinates.
func DistanceKm(from, to Coordinates) float64 {
	return GreatCircleDistanceKm(from.lat, from.lon, to.lat, to.lon)
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
