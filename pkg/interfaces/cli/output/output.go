package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/application/dto"
	"github.com/vsinha/motoperf/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// GenerateReport writes an upgrade report in the configured format
func GenerateReport(w io.Writer, report *dto.UpgradeReport, config Config) error {
	switch config.Format {
	case "", "text":
		return generateTextReport(w, report, config)
	case "json":
		return generateJSONOutput(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextReport creates the human-readable upgrade report
func generateTextReport(w io.Writer, report *dto.UpgradeReport, config Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "PERFORMANCE UPGRADE REPORT\n")
	fmt.Fprintf(&b, "-------------------------\n")
	fmt.Fprintf(&b, "Motorcycle: %s\n", report.Bike.Name)
	fmt.Fprintf(&b, "Budget: %s\n\n", FormatCurrency(report.Budget))

	fmt.Fprintf(&b, "Recommended Upgrades:\n")
	if len(report.Upgrades) == 0 {
		fmt.Fprintf(&b, "  (none within budget)\n")
	}
	for _, upgrade := range report.Upgrades {
		fmt.Fprintf(&b, "- %s (%s)\n", upgrade.Name, upgrade.Stage)
		fmt.Fprintf(&b, "  Cost: %s\n", FormatCurrency(upgrade.Cost))
		fmt.Fprintf(&b, "  HP Gain: %g\n", upgrade.HPGain)
		fmt.Fprintf(&b, "  Weight Reduction: %gkg\n", upgrade.WeightReduction)
		if config.Verbose {
			fmt.Fprintf(&b, "  Manufacturer: %s\n", upgrade.Manufacturer)
			fmt.Fprintf(&b, "  Installation: %gh\n", upgrade.InstallationTime)
		}
	}

	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped (over remaining budget):\n")
		for _, part := range report.Skipped {
			fmt.Fprintf(&b, "- %s (%s) %s\n", part.Name, part.Stage, FormatCurrency(part.Cost))
		}
	}

	if len(report.StageSummaries) > 0 {
		fmt.Fprintf(&b, "\nSpend by Stage:\n")
		fmt.Fprintf(&b, "%-8s %-6s %-12s %-8s\n", "Stage", "Parts", "Spend", "HP")
		fmt.Fprintf(&b, "%-8s %-6s %-12s %-8s\n", "--------", "------", "------------", "--------")
		for _, summary := range report.StageSummaries {
			fmt.Fprintf(&b, "%-8d %-6d %-12s %-8g\n",
				int(summary.Stage), summary.Parts, FormatCurrency(summary.Spend), summary.HPGain)
		}
	}

	metrics := report.Metrics
	fmt.Fprintf(&b, "\nFinal Specifications:\n")
	fmt.Fprintf(&b, "- Horsepower: %shp\n", formatNumber(metrics.FinalHP))
	fmt.Fprintf(&b, "- Weight: %skg\n", formatNumber(metrics.FinalWeight))
	fmt.Fprintf(&b, "- Power-to-Weight: %.2f hp/lb\n", metrics.PowerToWeight)
	fmt.Fprintf(&b, "- Upgrade Spend: %s\n", FormatCurrency(report.UpgradeSpend))
	fmt.Fprintf(&b, "- Remaining Budget: %s\n", FormatCurrency(report.RemainingBudget))
	fmt.Fprintf(&b, "- Installation Time: %gh\n", report.TotalInstallHours)
	fmt.Fprintf(&b, "- Total Investment: %s\n", FormatCurrency(metrics.TotalCost))

	if config.Verbose {
		fmt.Fprintf(&b, "\nReport ID: %s\n", report.ID)
		fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// GenerateMetrics writes a metrics summary for an explicit upgrade set
func GenerateMetrics(w io.Writer, metrics *entities.PerformanceMetrics, upgrades []entities.Part, config Config) error {
	if config.Format == "json" {
		return generateJSONOutput(w, struct {
			Upgrades []entities.Part             `json:"upgrades"`
			Metrics  *entities.PerformanceMetrics `json:"metrics"`
		}{upgrades, metrics})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Motorcycle: %s\n", metrics.Bike)
	fmt.Fprintf(&b, "Upgrades applied: %d\n", len(upgrades))
	for _, upgrade := range upgrades {
		fmt.Fprintf(&b, "- %s (%s) %s\n", upgrade.Name, upgrade.Stage, FormatCurrency(upgrade.Cost))
	}
	fmt.Fprintf(&b, "- Horsepower: %shp\n", formatNumber(metrics.FinalHP))
	fmt.Fprintf(&b, "- Weight: %skg\n", formatNumber(metrics.FinalWeight))
	fmt.Fprintf(&b, "- Power-to-Weight: %.2f hp/lb\n", metrics.PowerToWeight)
	fmt.Fprintf(&b, "- Total Investment: %s\n", FormatCurrency(metrics.TotalCost))

	_, err := io.WriteString(w, b.String())
	return err
}

// GenerateCatalog writes the catalog as a table, in catalog order
func GenerateCatalog(w io.Writer, bikes []entities.Bike, parts []entities.Part, config Config) error {
	if config.Format == "json" {
		return generateJSONOutput(w, struct {
			Bikes []entities.Bike `json:"bikes"`
			Parts []entities.Part `json:"parts"`
		}{bikes, parts})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %-8s %-8s %-12s\n", "Bike", "HP", "Weight", "Price")
	fmt.Fprintf(&b, "%-12s %-8s %-8s %-12s\n", "------------", "--------", "--------", "------------")
	for _, bike := range bikes {
		fmt.Fprintf(&b, "%-12s %-8g %-8g %-12s\n", bike.Name, bike.BaseHP, bike.BaseWeight, FormatCurrency(bike.Price))
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "%-12s %-6s %-16s %-11s %-6s %-7s %-6s %-15s\n",
		"Bike", "Stage", "Part", "Cost", "HP", "Kg", "Hours", "Manufacturer")
	fmt.Fprintf(&b, "%-12s %-6s %-16s %-11s %-6s %-7s %-6s %-15s\n",
		"------------", "------", "----------------", "-----------", "------", "-------", "------", "---------------")
	for _, part := range parts {
		bikeNames := make([]string, len(part.Compatibility))
		for i, bike := range part.Compatibility {
			bikeNames[i] = string(bike)
		}
		fmt.Fprintf(&b, "%-12s %-6d %-16s %-11s %-6g %-7g %-6g %-15s\n",
			strings.Join(bikeNames, "|"),
			int(part.Stage),
			part.Name,
			FormatCurrency(part.Cost),
			part.HPGain,
			part.WeightReduction,
			part.InstallationTime,
			part.Manufacturer)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// generateJSONOutput creates indented JSON output
func generateJSONOutput(w io.Writer, value interface{}) error {
	jsonData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// FormatCurrency renders an amount as $1,234.56
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return sign + "$" + grouped.String() + "." + frac
}

// formatNumber rounds to two decimals and drops trailing zeros, hiding the
// noise left by repeated float subtraction
func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).Round(2).String()
}
