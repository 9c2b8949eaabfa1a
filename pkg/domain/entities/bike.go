package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bike is the stock configuration of a motorcycle before any upgrades
type Bike struct {
	Name       BikeName        `json:"name"`
	BaseHP     float64         `json:"base_hp"`
	BaseWeight float64         `json:"base_weight_kg"`
	Price      decimal.Decimal `json:"price"`
}

// NewBike creates a validated Bike
func NewBike(name BikeName, baseHP, baseWeight float64, price decimal.Decimal) (*Bike, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidBike)
	}
	if baseHP < 0 {
		return nil, fmt.Errorf("%w: base hp cannot be negative, got %g", ErrInvalidBike, baseHP)
	}
	if baseWeight <= 0 {
		return nil, fmt.Errorf("%w: base weight must be positive, got %g", ErrInvalidBike, baseWeight)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative, got %s", ErrInvalidBike, price)
	}

	return &Bike{
		Name:       name,
		BaseHP:     baseHP,
		BaseWeight: baseWeight,
		Price:      price,
	}, nil
}
