package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/motoperf/pkg/infrastructure/logging"
	"github.com/vsinha/motoperf/pkg/interfaces/cli/output"
)

// ChartCommand writes the cost versus horsepower comparison for every bike
type ChartCommand struct {
	env      *Environment
	filename string
}

// NewChartCommand creates a chart command writing to the configured chart file
func NewChartCommand(env *Environment) *ChartCommand {
	return &ChartCommand{env: env, filename: env.Config.ChartFile}
}

// Execute runs the chart command
func (c *ChartCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bikes, err := c.env.Bikes.GetAllBikes()
	if err != nil {
		return err
	}
	parts, err := c.env.Parts.GetAllParts()
	if err != nil {
		return err
	}

	file, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer file.Close()

	if err := output.NewScatterChart().Render(file, bikes, parts); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	c.env.Logger.Info("chart written",
		logging.String("file", c.filename),
		logging.Int("bikes", len(bikes)),
		logging.Int("parts", len(parts)),
	)
	fmt.Fprintf(c.env.Out, "Chart written to %s\n", c.filename)
	return file.Close()
}
