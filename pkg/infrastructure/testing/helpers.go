package testing

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/memory"
)

const (
	YamahaR1 entities.BikeName = "Yamaha R1"
	DucatiV4 entities.BikeName = "Ducati V4"
)

type partRow struct {
	name         string
	cost         string
	hpGain       float64
	weight       float64
	stage        entities.Stage
	installHours float64
	manufacturer string
}

var referenceStages = []partRow{
	{"Quick Shifter", "699.99", 0, 0.2, entities.StageOne, 2, "Translogic"},
	{"Air Filter", "89.99", 2, 0.1, entities.StageOne, 0.5, "K&N"},
	{"ECU Flash", "499.99", 5, 0, entities.StageOne, 1, "Woolich Racing"},
	{"Full Exhaust", "2499.99", 8, 4.5, entities.StageTwo, 3, "Akrapovič"},
	{"Race ECU", "1499.99", 10, 0, entities.StageTwo, 2, "GET"},
	{"Brake Upgrade", "1299.99", 0, 1.2, entities.StageTwo, 4, "Brembo"},
	{"Carbon Wheels", "3999.99", 0, 3.8, entities.StageThree, 4, "BST"},
	{"Race Suspension", "4499.99", 0, 1.5, entities.StageThree, 6, "Öhlins"},
	{"Power Commander", "899.99", 12, 0, entities.StageThree, 2, "Dynojet"},
}

// BuildReferenceCatalog builds the two-bike, three-stage catalog independently
// of the embedded YAML table so loaders can be checked against it
func BuildReferenceCatalog() *entities.Catalog {
	catalog := &entities.Catalog{
		Bikes: []entities.Bike{
			{Name: YamahaR1, BaseHP: 200, BaseWeight: 201, Price: decimal.NewFromInt(17599)},
			{Name: DucatiV4, BaseHP: 214, BaseWeight: 195, Price: decimal.NewFromInt(23895)},
		},
	}

	for _, stage := range []entities.Stage{entities.StageOne, entities.StageTwo, entities.StageThree} {
		for _, bike := range catalog.Bikes {
			for _, row := range referenceStages {
				if row.stage != stage {
					continue
				}
				catalog.Parts = append(catalog.Parts, entities.Part{
					Name:             row.name,
					Cost:             decimal.RequireFromString(row.cost),
					HPGain:           row.hpGain,
					WeightReduction:  row.weight,
					Stage:            row.stage,
					InstallationTime: row.installHours,
					Compatibility:    []entities.BikeName{bike.Name},
					Manufacturer:     row.manufacturer,
				})
			}
		}
	}

	return catalog
}

// BuildReferenceRepositories loads the reference catalog into in-memory repositories
func BuildReferenceRepositories() (*memory.BikeRepository, *memory.PartRepository) {
	catalog := BuildReferenceCatalog()

	bikeRepo := memory.NewBikeRepository(len(catalog.Bikes))
	if err := bikeRepo.LoadBikes(catalog.Bikes); err != nil {
		panic(err)
	}

	partRepo := memory.NewPartRepository(len(catalog.Parts))
	if err := partRepo.LoadParts(catalog.Parts); err != nil {
		panic(err)
	}

	return bikeRepo, partRepo
}
