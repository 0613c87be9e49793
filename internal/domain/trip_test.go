package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buenosAiresToRosario(t *testing.T) (Coordinates, Coordinates) {
	t.Helper()
	return mustCoordinates(t, -34.6037, -58.3816), mustCoordinates(t, -32.9468, -60.6393)
}

func TestTripCost(t *testing.T) {
	origin, destination := buenosAiresToRosario(t)
	km := DistanceKm(origin, destination)

	tests := []struct {
		name   string
		kind   TripKind
		weight float64
		volume float64
		want   float64
	}{
		{name: "standard", kind: TripStandard, weight: 5000, volume: 20, want: 2 * 5000 * km},
		{name: "priority by weight", kind: TripPriority, weight: 4000, volume: 15, want: 4 * 4000 * km},
		{name: "priority by volume", kind: TripPriority, weight: 10, volume: 50, want: 10 * 50 * km},
		{name: "return leg", kind: TripReturn, weight: 5000, volume: 20, want: ReturnTripCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip, err := NewTrip(tt.kind, tt.weight, tt.volume, origin, destination)
			require.NoError(t, err)

			assert.Equal(t, tt.kind, trip.Kind())
			assert.Equal(t, tt.weight, trip.Weight())
			assert.Equal(t, tt.volume, trip.Volume())
			assert.Equal(t, km, trip.Distance())
			assert.InDelta(t, tt.want, trip.Cost(), 1e-6)
		})
	}
}

func TestTripCostWithEmptyLoad(t *testing.T) {
	origin, destination := buenosAiresToRosario(t)

	for _, kind := range []TripKind{TripStandard, TripPriority} {
		trip, err := NewTrip(kind, 0, 0, origin, destination)
		require.NoError(t, err)
		assert.Zero(t, trip.Cost(), "kind %s", kind)
	}

	ret, err := NewReturnTrip(0, 0, origin, origin)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, ret.Cost())
}

func TestNewTripRejectsInvalidLoad(t *testing.T) {
	origin, destination := buenosAiresToRosario(t)

	tests := []struct {
		name           string
		weight, volume float64
	}{
		{name: "negative weight", weight: -1, volume: 0},
		{name: "negative volume", weight: 0, volume: -0.5},
		{name: "nan weight", weight: math.NaN(), volume: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range []TripKind{TripStandard, TripPriority, TripReturn} {
				trip, err := NewTrip(kind, tt.weight, tt.volume, origin, destination)
				assert.Nil(t, trip)
				assert.True(t, errors.Is(err, ErrInvalidArgument), "kind %s: err = %v", kind, err)
			}
		})
	}
}

func TestNewTripUnknownKind(t *testing.T) {
	origin, destination := buenosAiresToRosario(t)

	trip, err := NewTrip("express", 1, 1, origin, destination)
	assert.Nil(t, trip)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseTripKind(t *testing.T) {
	got, err := ParseTripKind(" Priority ")
	require.NoError(t, err)
	assert.Equal(t, TripPriority, got)

	_, err = ParseTripKind("overnight")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
