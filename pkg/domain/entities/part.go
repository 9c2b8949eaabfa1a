package entities

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// BikeName identifies a motorcycle in the bike registry
type BikeName string

// Stage represents the upgrade tier a part belongs to (1 = mild, 3 = most aggressive)
type Stage int

const (
	StageOne Stage = iota + 1
	StageTwo
	StageThree
)

// String method for Stage enum
func (s Stage) String() string {
	switch s {
	case StageOne:
		return "Stage 1"
	case StageTwo:
		return "Stage 2"
	case StageThree:
		return "Stage 3"
	default:
		return "Unknown"
	}
}

// Valid reports whether the stage is one of the three known tiers
func (s Stage) Valid() bool {
	return s >= StageOne && s <= StageThree
}

// Part represents a performance upgrade in the catalog
type Part struct {
	Name             string          `json:"name"`
	Cost             decimal.Decimal `json:"cost"`
	HPGain           float64         `json:"hp_gain"`
	WeightReduction  float64         `json:"weight_reduction_kg"`
	Stage            Stage           `json:"stage"`
	InstallationTime float64         `json:"installation_time_hours"`
	Compatibility    []BikeName      `json:"compatibility"`
	Manufacturer     string          `json:"manufacturer"`
}

// NewPart creates a validated Part
func NewPart(
	name string,
	cost decimal.Decimal,
	hpGain float64,
	weightReduction float64,
	stage Stage,
	installationTime float64,
	compatibility []BikeName,
	manufacturer string,
) (*Part, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidPart)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: cost cannot be negative, got %s", ErrInvalidPart, cost)
	}
	if hpGain < 0 {
		return nil, fmt.Errorf("%w: hp gain cannot be negative, got %g", ErrInvalidPart, hpGain)
	}
	if weightReduction < 0 {
		return nil, fmt.Errorf("%w: weight reduction cannot be negative, got %g", ErrInvalidPart, weightReduction)
	}
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: stage must be between 1 and 3, got %d", ErrInvalidPart, stage)
	}
	if installationTime < 0 {
		return nil, fmt.Errorf("%w: installation time cannot be negative, got %g", ErrInvalidPart, installationTime)
	}
	if len(compatibility) == 0 {
		return nil, fmt.Errorf("%w: part %s must be compatible with at least one bike", ErrInvalidPart, name)
	}

	return &Part{
		Name:             name,
		Cost:             cost,
		HPGain:           hpGain,
		WeightReduction:  weightReduction,
		Stage:            stage,
		InstallationTime: installationTime,
		Compatibility:    slices.Clone(compatibility),
		Manufacturer:     manufacturer,
	}, nil
}

// CompatibleWith reports whether the part can be fitted to the given bike
func (p Part) CompatibleWith(bike BikeName) bool {
	return slices.Contains(p.Compatibility, bike)
}
