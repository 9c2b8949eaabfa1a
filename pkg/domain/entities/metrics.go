package entities

import "github.com/shopspring/decimal"

// PerformanceMetrics is the derived result of applying a set of upgrades to a bike
type PerformanceMetrics struct {
	Bike          BikeName        `json:"bike"`
	FinalHP       float64         `json:"final_hp"`
	FinalWeight   float64         `json:"final_weight_kg"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	PowerToWeight float64         `json:"power_to_weight"`
}
