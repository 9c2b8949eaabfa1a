package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

// WeightDivisor scales final weight before horsepower is divided by it.
// The published reports divide kilograms by 220.462 instead of multiplying by
// 2.20462, so the figure is not a true hp/lb ratio. Kept as-is so numbers stay
// comparable with those reports.
const WeightDivisor = 220.462

// PerformanceCalculator derives final specifications for a bike and a set of upgrades
type PerformanceCalculator struct{}

// NewPerformanceCalculator creates a new performance calculator
func NewPerformanceCalculator() *PerformanceCalculator {
	return &PerformanceCalculator{}
}

// Calculate applies every upgrade to the stock bike. Duplicates are applied
// once per occurrence and the final weight is never clamped.
func (pc *PerformanceCalculator) Calculate(
	bike *entities.Bike,
	upgrades []entities.Part,
) (*entities.PerformanceMetrics, error) {
	totalHP := bike.BaseHP
	totalWeight := bike.BaseWeight
	totalCost := bike.Price

	for _, upgrade := range upgrades {
		totalHP += upgrade.HPGain
		totalWeight -= upgrade.WeightReduction
		totalCost = totalCost.Add(upgrade.Cost)
	}

	if totalWeight == 0 {
		return nil, &entities.DivisionByZeroError{Bike: bike.Name, FinalWeight: totalWeight}
	}

	return &entities.PerformanceMetrics{
		Bike:          bike.Name,
		FinalHP:       totalHP,
		FinalWeight:   totalWeight,
		TotalCost:     totalCost,
		PowerToWeight: PowerToWeight(totalHP, totalWeight),
	}, nil
}

// PowerToWeight computes hp / (kg / WeightDivisor)
func PowerToWeight(hp, weightKg float64) float64 {
	return hp / (weightKg / WeightDivisor)
}

// UpgradeCost sums the cost of a set of upgrades without the bike price
func UpgradeCost(upgrades []entities.Part) decimal.Decimal {
	total := decimal.Zero
	for _, upgrade := range upgrades {
		total = total.Add(upgrade.Cost)
	}
	return total
}
