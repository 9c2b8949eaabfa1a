package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/yamlcatalog"
)

// LoadCatalog resolves the catalog source. An empty path selects the embedded
// table; .yaml/.yml files replace it wholesale and .csv files replace only the
// parts, keeping the embedded bikes.
func LoadCatalog(path string) (*entities.Catalog, error) {
	if path == "" {
		return yamlcatalog.BuildCatalog()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlcatalog.LoadFile(path)
	case ".csv":
		defaults, err := yamlcatalog.BuildCatalog()
		if err != nil {
			return nil, err
		}
		parts, err := csv.NewLoader().LoadParts(path)
		if err != nil {
			return nil, err
		}
		catalog := &entities.Catalog{Bikes: defaults.Bikes, Parts: parts}
		if err := checkPartBikes(catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	default:
		return nil, fmt.Errorf("unsupported catalog file %q: expected .yaml, .yml or .csv", path)
	}
}

// checkPartBikes rejects parts tagged with a bike the registry does not know
func checkPartBikes(catalog *entities.Catalog) error {
	known := lo.SliceToMap(catalog.Bikes, func(b entities.Bike) (entities.BikeName, struct{}) {
		return b.Name, struct{}{}
	})
	for _, part := range catalog.Parts {
		for _, bike := range part.Compatibility {
			if _, ok := known[bike]; !ok {
				return fmt.Errorf("part %q: %w", part.Name, &entities.UnknownBikeError{Bike: bike})
			}
		}
	}
	return nil
}
