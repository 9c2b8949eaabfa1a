package shared

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

// UpgradeSelection is the outcome of a single greedy pass over a bike's parts
type UpgradeSelection struct {
	Selected        []entities.Part
	Skipped         []entities.Part
	RemainingBudget decimal.Decimal
}

// SelectUpgradesByHPGain picks parts greedily by horsepower gain under a budget.
// Parts are ranked by HPGain descending; equal gains keep their input order.
// Each ranked part is taken when its cost fits the remaining budget and is
// otherwise skipped for good. There is no backtracking, so the result is not
// guaranteed to maximise total gain.
func SelectUpgradesByHPGain(parts []entities.Part, budget decimal.Decimal) *UpgradeSelection {
	ranked := make([]entities.Part, len(parts))
	copy(ranked, parts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HPGain > ranked[j].HPGain
	})

	selection := &UpgradeSelection{
		Selected:        make([]entities.Part, 0, len(ranked)),
		RemainingBudget: budget,
	}

	for _, part := range ranked {
		if part.Cost.LessThanOrEqual(selection.RemainingBudget) {
			selection.Selected = append(selection.Selected, part)
			selection.RemainingBudget = selection.RemainingBudget.Sub(part.Cost)
			continue
		}
		selection.Skipped = append(selection.Skipped, part)
	}

	return selection
}
