package domain

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates rejects values outside the canonical ranges
// (latitude -90..90, longitude -180..180).
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinates{}, invalidArgument("latitude %v out of range [-90, 90]", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return Coordinates{}, invalidArgument("longitude %v out of range [-180, 180]", lon)
	}
	return Coordinates{lat: lat, lon: lon}, nil
}

func (c Coordinates) Lat() float64 { return c.lat }
func (c Coordinates) Lon() float64 { return c.lon }

// Geohash encodes the point with the given number of characters (1..12).
func (c Coordinates) Geohash(precision uint) string {
	return geohash.EncodeWithPrecision(c.lat, c.lon, precision)
}
