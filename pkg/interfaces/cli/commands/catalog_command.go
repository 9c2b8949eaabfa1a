package commands

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/interfaces/cli/output"
)

// CatalogFilter narrows the listing; zero values mean no filtering
type CatalogFilter struct {
	Bike  entities.BikeName
	Stage entities.Stage
}

// CatalogCommand lists bikes and parts
type CatalogCommand struct {
	env    *Environment
	filter CatalogFilter
}

// NewCatalogCommand creates a catalog listing command
func NewCatalogCommand(env *Environment, filter CatalogFilter) *CatalogCommand {
	return &CatalogCommand{env: env, filter: filter}
}

// Execute runs the catalog command
func (c *CatalogCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.filter.Stage != 0 && !c.filter.Stage.Valid() {
		return fmt.Errorf("stage must be between 1 and 3, got %d", c.filter.Stage)
	}

	bikes, err := c.env.Bikes.GetAllBikes()
	if err != nil {
		return err
	}
	parts, err := c.env.Parts.GetAllParts()
	if err != nil {
		return err
	}

	if c.filter.Bike != "" {
		bike, err := c.env.Bikes.GetBike(c.filter.Bike)
		if err != nil {
			return err
		}
		bikes = []entities.Bike{*bike}
		parts = lo.Filter(parts, func(p entities.Part, _ int) bool {
			return p.CompatibleWith(c.filter.Bike)
		})
	}
	if c.filter.Stage != 0 {
		parts = lo.Filter(parts, func(p entities.Part, _ int) bool {
			return p.Stage == c.filter.Stage
		})
	}

	return output.GenerateCatalog(c.env.Out, bikes, parts, output.Config{Format: c.env.Config.Format})
}
