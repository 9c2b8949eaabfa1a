package commands

import (
	"context"
	"fmt"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/logging"
	"github.com/vsinha/motoperf/pkg/interfaces/cli/output"
)

// MetricsCommand computes performance metrics for an explicit list of parts.
// A part named twice is applied twice.
type MetricsCommand struct {
	env       *Environment
	bike      entities.BikeName
	partNames []string
}

// NewMetricsCommand creates a metrics command for the configured bike
func NewMetricsCommand(env *Environment, partNames []string) *MetricsCommand {
	return &MetricsCommand{
		env:       env,
		bike:      entities.BikeName(env.Config.Bike),
		partNames: partNames,
	}
}

// Execute runs the metrics command
func (c *MetricsCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	upgrades := make([]entities.Part, 0, len(c.partNames))
	for _, name := range c.partNames {
		part, err := c.env.Parts.GetPart(c.bike, name)
		if err != nil {
			return fmt.Errorf("failed to resolve upgrade: %w", err)
		}
		upgrades = append(upgrades, *part)
	}

	metrics, err := c.env.Service.ComputeMetrics(c.bike, upgrades)
	if err != nil {
		return fmt.Errorf("failed to compute metrics: %w", err)
	}

	c.env.Logger.Debug("metrics computed",
		logging.String("bike", string(c.bike)),
		logging.Int("upgrades", len(upgrades)),
		logging.Float64("power_to_weight", metrics.PowerToWeight),
	)

	return output.GenerateMetrics(c.env.Out, metrics, upgrades, output.Config{Format: c.env.Config.Format})
}
