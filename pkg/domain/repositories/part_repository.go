package repositories

import "github.com/vsinha/motoperf/pkg/domain/entities"

// PartRepository provides read access to the parts catalog.
// All listings preserve catalog order.
type PartRepository interface {
	GetPartsForBike(bike entities.BikeName) ([]entities.Part, error)
	GetPart(bike entities.BikeName, name string) (*entities.Part, error)
	GetAllParts() ([]entities.Part, error)
	LoadParts(parts []entities.Part) error
}
