package memory

import (
	"fmt"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/domain/repositories"
)

// BikeRepository provides in-memory bike registry storage
type BikeRepository struct {
	bikes    []entities.Bike
	bikesMap map[entities.BikeName]int
}

// NewBikeRepository creates a new in-memory bike repository
func NewBikeRepository(expectedBikes int) *BikeRepository {
	return &BikeRepository{
		bikes:    make([]entities.Bike, 0, expectedBikes),
		bikesMap: make(map[entities.BikeName]int, expectedBikes),
	}
}

// Verify interface compliance
var _ repositories.BikeRepository = (*BikeRepository)(nil)

// LoadBikes loads bikes into the repository
func (r *BikeRepository) LoadBikes(bikes []entities.Bike) error {
	for _, bike := range bikes {
		if err := r.AddBike(bike); err != nil {
			return err
		}
	}
	return nil
}

// AddBike registers a bike; names must be unique
func (r *BikeRepository) AddBike(bike entities.Bike) error {
	if _, exists := r.bikesMap[bike.Name]; exists {
		return fmt.Errorf("bike already registered: %s", bike.Name)
	}
	r.bikesMap[bike.Name] = len(r.bikes)
	r.bikes = append(r.bikes, bike)
	return nil
}

// GetBike returns the stock configuration for a bike name
func (r *BikeRepository) GetBike(name entities.BikeName) (*entities.Bike, error) {
	index, exists := r.bikesMap[name]
	if !exists {
		return nil, &entities.UnknownBikeError{Bike: name}
	}
	bike := r.bikes[index]
	return &bike, nil
}

// GetAllBikes returns all bikes in registration order
func (r *BikeRepository) GetAllBikes() ([]entities.Bike, error) {
	bikes := make([]entities.Bike, len(r.bikes))
	copy(bikes, r.bikes)
	return bikes, nil
}
