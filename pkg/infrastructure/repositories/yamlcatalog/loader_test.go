package yamlcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	testhelpers "github.com/vsinha/motoperf/pkg/infrastructure/testing"
)

func assertCatalogsEqual(t *testing.T, want, got *entities.Catalog) {
	t.Helper()

	require.Len(t, got.Bikes, len(want.Bikes))
	for i := range want.Bikes {
		assert.Equal(t, want.Bikes[i].Name, got.Bikes[i].Name)
		assert.Equal(t, want.Bikes[i].BaseHP, got.Bikes[i].BaseHP)
		assert.Equal(t, want.Bikes[i].BaseWeight, got.Bikes[i].BaseWeight)
		assert.True(t, want.Bikes[i].Price.Equal(got.Bikes[i].Price), "price of %s", want.Bikes[i].Name)
	}

	require.Len(t, got.Parts, len(want.Parts))
	for i := range want.Parts {
		w, g := want.Parts[i], got.Parts[i]
		assert.Equal(t, w.Name, g.Name, "part %d", i)
		assert.True(t, w.Cost.Equal(g.Cost), "cost of %s: want %s got %s", w.Name, w.Cost, g.Cost)
		assert.Equal(t, w.HPGain, g.HPGain, "hp gain of %s", w.Name)
		assert.Equal(t, w.WeightReduction, g.WeightReduction, "weight reduction of %s", w.Name)
		assert.Equal(t, w.Stage, g.Stage, "stage of %s", w.Name)
		assert.Equal(t, w.InstallationTime, g.InstallationTime, "installation time of %s", w.Name)
		assert.Equal(t, w.Compatibility, g.Compatibility, "compatibility of %s", w.Name)
		assert.Equal(t, w.Manufacturer, g.Manufacturer, "manufacturer of %s", w.Name)
	}
}

func TestBuildCatalog_MatchesReference(t *testing.T) {
	catalog, err := BuildCatalog()
	require.NoError(t, err)

	assertCatalogsEqual(t, testhelpers.BuildReferenceCatalog(), catalog)
}

func TestBuildCatalog_ThreePartsPerBikeAndStage(t *testing.T) {
	catalog, err := BuildCatalog()
	require.NoError(t, err)

	counts := make(map[entities.BikeName]map[entities.Stage]int)
	for _, part := range catalog.Parts {
		require.Len(t, part.Compatibility, 1)
		bike := part.Compatibility[0]
		if counts[bike] == nil {
			counts[bike] = make(map[entities.Stage]int)
		}
		counts[bike][part.Stage]++
	}

	for _, bike := range catalog.Bikes {
		for _, stage := range []entities.Stage{entities.StageOne, entities.StageTwo, entities.StageThree} {
			assert.Equal(t, 3, counts[bike.Name][stage], "%s %s", bike.Name, stage)
		}
	}
}

func TestLoadFile_SortsStages(t *testing.T) {
	content := `
bikes:
  - name: Test Bike
    base_hp: 100
    base_weight: 150
    price: 9999.5
stages:
  - stage: 3
    parts:
      - name: Turbo
        cost: 5000
        hp_gain: 40
        weight_reduction: 0
        installation_time: 10
        manufacturer: Garrett
  - stage: 1
    parts:
      - name: Grips
        cost: 19.99
        hp_gain: 0
        weight_reduction: 0
        installation_time: 0.25
        manufacturer: Renthal
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, catalog.Bikes, 1)
	assert.Equal(t, "9999.5", catalog.Bikes[0].Price.String())

	require.Len(t, catalog.Parts, 2)
	assert.Equal(t, "Grips", catalog.Parts[0].Name)
	assert.Equal(t, entities.StageOne, catalog.Parts[0].Stage)
	assert.Equal(t, "19.99", catalog.Parts[0].Cost.String())
	assert.Equal(t, "Turbo", catalog.Parts[1].Name)
	assert.Equal(t, []entities.BikeName{"Test Bike"}, catalog.Parts[1].Compatibility)
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative cost": `
bikes:
  - {name: B, base_hp: 1, base_weight: 1, price: 1}
stages:
  - stage: 1
    parts:
      - {name: P, cost: -1, hp_gain: 0, weight_reduction: 0, installation_time: 0}
`,
		"stage out of range": `
bikes:
  - {name: B, base_hp: 1, base_weight: 1, price: 1}
stages:
  - stage: 4
    parts:
      - {name: P, cost: 1, hp_gain: 0, weight_reduction: 0, installation_time: 0}
`,
		"no bikes": `
stages:
  - stage: 1
    parts:
      - {name: P, cost: 1, hp_gain: 0, weight_reduction: 0, installation_time: 0}
`,
		"zero base weight": `
bikes:
  - {name: B, base_hp: 1, base_weight: 0, price: 1}
stages: []
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InMemoryDocument(t *testing.T) {
	doc := []byte(`
bikes:
  - {name: Solo, base_hp: 50, base_weight: 120, price: 4000}
stages:
  - stage: 2
    parts:
      - {name: Intake, cost: 150.5, hp_gain: 2, weight_reduction: 0.3, installation_time: 1, manufacturer: K&N}
`)

	catalog, err := load(rawbytes.Provider(doc))
	require.NoError(t, err)

	require.Len(t, catalog.Bikes, 1)
	require.Len(t, catalog.Parts, 1)
	assert.Equal(t, "Intake", catalog.Parts[0].Name)
	assert.Equal(t, entities.StageTwo, catalog.Parts[0].Stage)
	assert.Equal(t, "150.5", catalog.Parts[0].Cost.String())
	assert.Equal(t, []entities.BikeName{"Solo"}, catalog.Parts[0].Compatibility)
}
