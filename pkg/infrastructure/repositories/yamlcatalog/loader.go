// Package yamlcatalog builds the parts catalog from a YAML table.
//
// The table lists bikes and, per stage, the parts offered for every bike.
// A copy of the stock table is embedded in the binary; LoadFile reads a
// replacement with the same schema.
package yamlcatalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type bikeRecord struct {
	Name       string  `koanf:"name" validate:"required"`
	BaseHP     float64 `koanf:"base_hp" validate:"gte=0"`
	BaseWeight float64 `koanf:"base_weight" validate:"gt=0"`
	Price      float64 `koanf:"price" validate:"gte=0"`
}

type partRecord struct {
	Name             string  `koanf:"name" validate:"required"`
	Cost             float64 `koanf:"cost" validate:"gte=0"`
	HPGain           float64 `koanf:"hp_gain" validate:"gte=0"`
	WeightReduction  float64 `koanf:"weight_reduction" validate:"gte=0"`
	InstallationTime float64 `koanf:"installation_time" validate:"gte=0"`
	Manufacturer     string  `koanf:"manufacturer"`
}

type stageRecord struct {
	Stage int          `koanf:"stage" validate:"min=1,max=3"`
	Parts []partRecord `koanf:"parts" validate:"required,dive"`
}

type document struct {
	Bikes  []bikeRecord  `koanf:"bikes" validate:"required,min=1,dive"`
	Stages []stageRecord `koanf:"stages" validate:"required,dive"`
}

// BuildCatalog returns the stock catalog embedded in the binary
func BuildCatalog() (*entities.Catalog, error) {
	catalog, err := load(rawbytes.Provider(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return catalog, nil
}

// LoadFile reads a catalog table from a YAML file
func LoadFile(path string) (*entities.Catalog, error) {
	catalog, err := load(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return catalog, nil
}

func load(provider koanf.Provider) (*entities.Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(provider, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return expand(doc)
}

// expand turns the table into a Catalog: for each stage in ascending order,
// for each bike, the stage's parts in declaration order, each tagged with
// that single bike.
func expand(doc document) (*entities.Catalog, error) {
	catalog := &entities.Catalog{}

	for _, record := range doc.Bikes {
		bike, err := entities.NewBike(
			entities.BikeName(record.Name),
			record.BaseHP,
			record.BaseWeight,
			decimal.NewFromFloat(record.Price),
		)
		if err != nil {
			return nil, err
		}
		catalog.Bikes = append(catalog.Bikes, *bike)
	}

	stages := make([]stageRecord, len(doc.Stages))
	copy(stages, doc.Stages)
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Stage < stages[j].Stage
	})

	for _, stage := range stages {
		for _, bike := range catalog.Bikes {
			for _, record := range stage.Parts {
				part, err := entities.NewPart(
					record.Name,
					decimal.NewFromFloat(record.Cost),
					record.HPGain,
					record.WeightReduction,
					entities.Stage(stage.Stage),
					record.InstallationTime,
					[]entities.BikeName{bike.Name},
					record.Manufacturer,
				)
				if err != nil {
					return nil, fmt.Errorf("stage %d: %w", stage.Stage, err)
				}
				catalog.Parts = append(catalog.Parts, *part)
			}
		}
	}

	return catalog, nil
}
