package repositories

import "github.com/vsinha/motoperf/pkg/domain/entities"

// BikeRepository provides access to the bike registry
type BikeRepository interface {
	// GetBike returns *entities.UnknownBikeError when the name is not registered.
	GetBike(name entities.BikeName) (*entities.Bike, error)
	GetAllBikes() ([]entities.Bike, error)
	LoadBikes(bikes []entities.Bike) error
}
