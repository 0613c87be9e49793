package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"route-sheet-service/internal/domain"
	"route-sheet-service/internal/ports"
)

type TruckSeed struct {
	Model     string  `json:"model"`
	Plate     string  `json:"plate"`
	MaxWeight float64 `json:"max_weight"`
	MaxVolume float64 `json:"max_volume"`
}

// Populate the fleet with trucks from a JSON file.
// Returns the number of trucks registered before any failure.
func SeedFromJSON(ctx context.Context, repo ports.TruckRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed trucks: read %q: %w", jsonPath, err)
	}

	var data []TruckSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed trucks: parse json: %w", err)
	}

	// Validate everything before registering anything.
	trucks := make([]*domain.Truck, 0, len(data))
	for i, item := range data {
		truck, err := domain.NewTruck(item.Model, item.Plate, item.MaxWeight, item.MaxVolume)
		if err != nil {
			return 0, fmt.Errorf("seed trucks: item at index %d: %w", i+1, err)
		}
		trucks = append(trucks, truck)
	}

	for i, t := range trucks {
		if err := repo.Save(ctx, t); err != nil {
			return i, fmt.Errorf("seed trucks: %w", err)
		}
	}

	return len(trucks), nil
}
