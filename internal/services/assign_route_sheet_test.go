package services

import (
	"context"
	"errors"
	"route-sheet-service/internal/adapters/repositories"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRouteSheet(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryTruckRepository()

	_, err := RegisterTruck(ctx, repo, "Modelo X", "AB123CD", 10000, 50)
	require.NoError(t, err)

	truck, err := AssignRouteSheet(ctx, repo, "ab123cd", RouteSheetInput{
		Trips: []TripInput{standardTrip(5000, 20), priorityTrip(4000, 15)},
	})
	require.NoError(t, err)
	require.NotNil(t, truck.AssignedRouteSheet())
	assert.Equal(t, 9000.0, truck.AssignedRouteSheet().TotalWeight())

	before := truck.AssignedRouteSheet()
	_, err = AssignRouteSheet(ctx, repo, "AB123CD", RouteSheetInput{
		Trips: []TripInput{standardTrip(15000, 60)},
	})

	var capErr *domain.CapacityExceededError
	require.True(t, errors.As(err, &capErr), "err = %v", err)
	assert.Equal(t, 15000.0, capErr.TotalWeight)
	assert.Same(t, before, truck.AssignedRouteSheet())
}

func TestAssignRouteSheetUnknownTruck(t *testing.T) {
	repo := repositories.NewMemoryTruckRepository()

	_, err := AssignRouteSheet(context.Background(), repo, "NOPE", RouteSheetInput{})
	assert.ErrorIs(t, err, ports.ErrTruckNotFound)
}

func TestRegisterTruck(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryTruckRepository()

	_, err := RegisterTruck(ctx, repo, "Volvo", "AB100", 100, 30.5)
	require.NoError(t, err)

	_, err = RegisterTruck(ctx, repo, "Volvo", "ab100", 100, 30.5)
	assert.ErrorIs(t, err, ports.ErrTruckExists)

	_, err = RegisterTruck(ctx, repo, "Volvo", "AB200", -1, 30.5)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
