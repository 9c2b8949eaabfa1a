package memory

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/domain/repositories"
)

// PartRepository provides in-memory parts catalog storage
type PartRepository struct {
	parts []entities.Part
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository(expectedParts int) *PartRepository {
	return &PartRepository{
		parts: make([]entities.Part, 0, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// LoadParts appends parts to the catalog, keeping their order
func (r *PartRepository) LoadParts(parts []entities.Part) error {
	r.parts = append(r.parts, parts...)
	return nil
}

// GetPartsForBike returns the parts compatible with bike in catalog order
func (r *PartRepository) GetPartsForBike(bike entities.BikeName) ([]entities.Part, error) {
	return lo.Filter(r.parts, func(part entities.Part, _ int) bool {
		return part.CompatibleWith(bike)
	}), nil
}

// GetPart returns the first part with the given name that fits bike
func (r *PartRepository) GetPart(bike entities.BikeName, name string) (*entities.Part, error) {
	part, found := lo.Find(r.parts, func(part entities.Part) bool {
		return part.Name == name && part.CompatibleWith(bike)
	})
	if !found {
		return nil, fmt.Errorf("%w: %s for %s", entities.ErrPartNotFound, name, bike)
	}
	return &part, nil
}

// GetAllParts returns the full catalog
func (r *PartRepository) GetAllParts() ([]entities.Part, error) {
	parts := make([]entities.Part, len(r.parts))
	copy(parts, r.parts)
	return parts, nil
}
