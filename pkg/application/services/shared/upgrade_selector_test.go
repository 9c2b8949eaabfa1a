package shared

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

func testPart(name, cost string, hp float64, stage entities.Stage) entities.Part {
	return entities.Part{
		Name:          name,
		Cost:          decimal.RequireFromString(cost),
		HPGain:        hp,
		Stage:         stage,
		Compatibility: []entities.BikeName{"Ducati V4"},
	}
}

// ducatiParts returns the nine Ducati V4 parts in catalog order
func ducatiParts() []entities.Part {
	return []entities.Part{
		testPart("Quick Shifter", "699.99", 0, entities.StageOne),
		testPart("Air Filter", "89.99", 2, entities.StageOne),
		testPart("ECU Flash", "499.99", 5, entities.StageOne),
		testPart("Full Exhaust", "2499.99", 8, entities.StageTwo),
		testPart("Race ECU", "1499.99", 10, entities.StageTwo),
		testPart("Brake Upgrade", "1299.99", 0, entities.StageTwo),
		testPart("Carbon Wheels", "3999.99", 0, entities.StageThree),
		testPart("Race Suspension", "4499.99", 0, entities.StageThree),
		testPart("Power Commander", "899.99", 12, entities.StageThree),
	}
}

func names(parts []entities.Part) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Name
	}
	return out
}

func assertNames(t *testing.T, got []entities.Part, want []string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("Expected %d parts %v, got %d parts %v", len(want), want, len(gotNames), gotNames)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], gotNames[i])
		}
	}
}

func TestSelectUpgradesByHPGain_DucatiBudget(t *testing.T) {
	selection := SelectUpgradesByHPGain(ducatiParts(), decimal.NewFromInt(15000))

	// Carbon Wheels still fits: 3510.08 remains after it, Race Suspension does not.
	assertNames(t, selection.Selected, []string{
		"Power Commander",
		"Race ECU",
		"Full Exhaust",
		"ECU Flash",
		"Air Filter",
		"Quick Shifter",
		"Brake Upgrade",
		"Carbon Wheels",
	})
	assertNames(t, selection.Skipped, []string{"Race Suspension"})

	if !selection.RemainingBudget.Equal(decimal.RequireFromString("3510.08")) {
		t.Errorf("Expected remaining budget 3510.08, got %s", selection.RemainingBudget)
	}
}

func TestSelectUpgradesByHPGain_StableTies(t *testing.T) {
	selection := SelectUpgradesByHPGain(ducatiParts(), decimal.NewFromInt(1_000_000))

	assertNames(t, selection.Selected, []string{
		"Power Commander",
		"Race ECU",
		"Full Exhaust",
		"ECU Flash",
		"Air Filter",
		"Quick Shifter",
		"Brake Upgrade",
		"Carbon Wheels",
		"Race Suspension",
	})
	if len(selection.Skipped) != 0 {
		t.Errorf("Expected nothing skipped, got %v", names(selection.Skipped))
	}
}

func TestSelectUpgradesByHPGain_ExactBudget(t *testing.T) {
	// Sum of all nine parts
	selection := SelectUpgradesByHPGain(ducatiParts(), decimal.RequireFromString("15989.91"))

	if len(selection.Selected) != 9 {
		t.Errorf("Expected all 9 parts at exact budget, got %d", len(selection.Selected))
	}
	if !selection.RemainingBudget.IsZero() {
		t.Errorf("Expected zero remaining budget, got %s", selection.RemainingBudget)
	}
}

func TestSelectUpgradesByHPGain_ZeroAndNegativeBudget(t *testing.T) {
	for _, budget := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-500)} {
		selection := SelectUpgradesByHPGain(ducatiParts(), budget)
		if len(selection.Selected) != 0 {
			t.Errorf("Budget %s: expected empty selection, got %v", budget, names(selection.Selected))
		}
		if len(selection.Skipped) != 9 {
			t.Errorf("Budget %s: expected 9 skipped parts, got %d", budget, len(selection.Skipped))
		}
		if !selection.RemainingBudget.Equal(budget) {
			t.Errorf("Budget %s: expected remaining budget unchanged, got %s", budget, selection.RemainingBudget)
		}
	}
}

func TestSelectUpgradesByHPGain_NoBacktracking(t *testing.T) {
	// The big part is taken first and starves two cheaper parts whose combined
	// gain would have been higher.
	parts := []entities.Part{
		testPart("Small A", "50", 6, entities.StageOne),
		testPart("Small B", "50", 6, entities.StageOne),
		testPart("Big", "90", 10, entities.StageTwo),
	}

	selection := SelectUpgradesByHPGain(parts, decimal.NewFromInt(100))

	assertNames(t, selection.Selected, []string{"Big"})
	assertNames(t, selection.Skipped, []string{"Small A", "Small B"})
}

func TestSelectUpgradesByHPGain_DoesNotMutateInput(t *testing.T) {
	parts := ducatiParts()
	SelectUpgradesByHPGain(parts, decimal.NewFromInt(15000))

	assertNames(t, parts, names(ducatiParts()))
}

func TestSelectUpgradesByHPGain_Empty(t *testing.T) {
	selection := SelectUpgradesByHPGain(nil, decimal.NewFromInt(100))
	if len(selection.Selected) != 0 || len(selection.Skipped) != 0 {
		t.Errorf("Expected empty selection for empty input, got %+v", selection)
	}
}
