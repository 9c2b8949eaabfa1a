// Package motoperf is the library entry point: it wires the catalog, the
// in-memory registries and the upgrade service behind a single Analyzer.
package motoperf

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/motoperf/pkg/application/dto"
	"github.com/vsinha/motoperf/pkg/application/services/upgrade"
	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/yamlcatalog"
)

// Re-exported so callers need a single import for the common cases
type (
	BikeName           = entities.BikeName
	Part               = entities.Part
	Bike               = entities.Bike
	Catalog            = entities.Catalog
	PerformanceMetrics = entities.PerformanceMetrics
	UpgradeReport      = dto.UpgradeReport
)

var (
	ErrUnknownBike    = entities.ErrUnknownBike
	ErrDivisionByZero = entities.ErrDivisionByZero
)

// AnalyzerConfig holds optional dependencies of an Analyzer
type AnalyzerConfig struct {
	// Catalog replaces the built-in catalog when non-nil.
	Catalog *entities.Catalog
	// Logger receives selection traces; nil disables logging.
	Logger *zap.Logger
	// Recorder receives instrumentation; nil disables it.
	Recorder upgrade.MetricsRecorder
}

// Analyzer answers upgrade questions against one immutable catalog.
// It is safe for concurrent use once constructed.
type Analyzer struct {
	catalog *entities.Catalog
	parts   *memory.PartRepository
	service *upgrade.Service
}

// NewAnalyzer creates an analyzer over the built-in catalog
func NewAnalyzer() (*Analyzer, error) {
	return NewAnalyzerWithConfig(AnalyzerConfig{})
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) (*Analyzer, error) {
	catalog := config.Catalog
	if catalog == nil {
		var err error
		if catalog, err = yamlcatalog.BuildCatalog(); err != nil {
			return nil, fmt.Errorf("failed to build catalog: %w", err)
		}
	}

	bikes := memory.NewBikeRepository(len(catalog.Bikes))
	if err := bikes.LoadBikes(catalog.Bikes); err != nil {
		return nil, fmt.Errorf("failed to load bikes: %w", err)
	}
	parts := memory.NewPartRepository(len(catalog.Parts))
	if err := parts.LoadParts(catalog.Parts); err != nil {
		return nil, fmt.Errorf("failed to load parts: %w", err)
	}

	return &Analyzer{
		catalog: catalog,
		parts:   parts,
		service: upgrade.NewService(bikes, parts, config.Logger, upgrade.WithMetricsRecorder(config.Recorder)),
	}, nil
}

// Catalog returns the catalog the analyzer was built over
func (a *Analyzer) Catalog() *entities.Catalog {
	return a.catalog
}

// SelectUpgrades picks parts for bike greedily by horsepower gain within budget
func (a *Analyzer) SelectUpgrades(bike BikeName, budget decimal.Decimal) ([]Part, error) {
	return a.service.SelectUpgrades(bike, budget)
}

// ComputeMetrics applies upgrades to bike
func (a *Analyzer) ComputeMetrics(bike BikeName, upgrades []Part) (*PerformanceMetrics, error) {
	return a.service.ComputeMetrics(bike, upgrades)
}

// ComputeMetricsByName resolves part names for bike before computing metrics.
// Repeated names apply the part repeatedly.
func (a *Analyzer) ComputeMetricsByName(bike BikeName, partNames ...string) (*PerformanceMetrics, error) {
	upgrades := make([]Part, 0, len(partNames))
	for _, name := range partNames {
		part, err := a.parts.GetPart(bike, name)
		if err != nil {
			return nil, err
		}
		upgrades = append(upgrades, *part)
	}
	return a.service.ComputeMetrics(bike, upgrades)
}

// Report runs selection and metrics together and summarizes the result
func (a *Analyzer) Report(bike BikeName, budget decimal.Decimal) (*UpgradeReport, error) {
	return a.service.GenerateReport(bike, budget)
}
