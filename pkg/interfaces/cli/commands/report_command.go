package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/logging"
	"github.com/vsinha/motoperf/pkg/interfaces/cli/output"
)

// ReportCommand selects upgrades under a budget and prints the report
type ReportCommand struct {
	env     *Environment
	bike    entities.BikeName
	budget  decimal.Decimal
	verbose bool
}

// NewReportCommand creates a report command for the configured bike and budget
func NewReportCommand(env *Environment, verbose bool) *ReportCommand {
	return &ReportCommand{
		env:     env,
		bike:    entities.BikeName(env.Config.Bike),
		budget:  decimal.NewFromFloat(env.Config.Budget),
		verbose: verbose,
	}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.env.Logger.Info("generating upgrade report",
		logging.String("bike", string(c.bike)),
		logging.String("budget", c.budget.String()),
	)

	report, err := c.env.Service.GenerateReport(c.bike, c.budget)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return output.GenerateReport(c.env.Out, report, output.Config{
		Format:  c.env.Config.Format,
		Verbose: c.verbose,
	})
}
