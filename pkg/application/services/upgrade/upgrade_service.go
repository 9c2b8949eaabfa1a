package upgrade

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vsinha/motoperf/pkg/application/dto"
	"github.com/vsinha/motoperf/pkg/application/services/shared"
	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/domain/repositories"
	"github.com/vsinha/motoperf/pkg/domain/services"
)

// Operation names reported to the metrics recorder
const (
	OperationSelect  = "select_upgrades"
	OperationMetrics = "compute_metrics"
)

// MetricsRecorder receives instrumentation from the upgrade service
type MetricsRecorder interface {
	ObserveSelection(bike entities.BikeName, selected, skipped int, remaining decimal.Decimal)
	ObserveComputation(bike entities.BikeName, metrics *entities.PerformanceMetrics)
	ObserveError(operation string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSelection(entities.BikeName, int, int, decimal.Decimal) {}
func (nopRecorder) ObserveComputation(entities.BikeName, *entities.PerformanceMetrics) {}
func (nopRecorder) ObserveError(string, error) {}

// Option configures a Service
type Option func(*Service)

// WithMetricsRecorder sets the recorder notified of selections, computations and failures
func WithMetricsRecorder(recorder MetricsRecorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithClock overrides the time source used to stamp reports
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service selects upgrades for a bike under a budget and computes the resulting metrics.
// It holds no mutable state; every call is independent.
type Service struct {
	bikeRepo   repositories.BikeRepository
	partRepo   repositories.PartRepository
	calculator *services.PerformanceCalculator
	recorder   MetricsRecorder
	logger     *zap.Logger
	now        func() time.Time
}

// NewService creates a new upgrade service over the given repositories
func NewService(
	bikeRepo repositories.BikeRepository,
	partRepo repositories.PartRepository,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		bikeRepo:   bikeRepo,
		partRepo:   partRepo,
		calculator: services.NewPerformanceCalculator(),
		recorder:   nopRecorder{},
		logger:     logger.Named("upgrade"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectUpgrades returns the greedily selected parts for bike in selection order
func (s *Service) SelectUpgrades(bike entities.BikeName, budget decimal.Decimal) ([]entities.Part, error) {
	selection, err := s.Select(bike, budget)
	if err != nil {
		return nil, err
	}
	return selection.Selected, nil
}

// Select runs the greedy selection for bike and also reports the skipped parts
// and the budget left over
func (s *Service) Select(bike entities.BikeName, budget decimal.Decimal) (*shared.UpgradeSelection, error) {
	if _, err := s.bikeRepo.GetBike(bike); err != nil {
		s.fail(OperationSelect, bike, err)
		return nil, err
	}

	parts, err := s.partRepo.GetPartsForBike(bike)
	if err != nil {
		s.fail(OperationSelect, bike, err)
		return nil, err
	}

	selection := shared.SelectUpgradesByHPGain(parts, budget)

	for _, part := range selection.Selected {
		s.logger.Debug("upgrade selected",
			zap.String("bike", string(bike)),
			zap.String("part", part.Name),
			zap.Float64("hp_gain", part.HPGain),
			zap.Stringer("cost", part.Cost),
		)
	}
	for _, part := range selection.Skipped {
		s.logger.Debug("upgrade skipped",
			zap.String("bike", string(bike)),
			zap.String("part", part.Name),
			zap.Stringer("cost", part.Cost),
		)
	}
	s.recorder.ObserveSelection(bike, len(selection.Selected), len(selection.Skipped), selection.RemainingBudget)

	return selection, nil
}

// ComputeMetrics applies upgrades to bike. The upgrades need not come from
// SelectUpgrades and duplicates are counted once per occurrence.
func (s *Service) ComputeMetrics(bike entities.BikeName, upgrades []entities.Part) (*entities.PerformanceMetrics, error) {
	base, err := s.bikeRepo.GetBike(bike)
	if err != nil {
		s.fail(OperationMetrics, bike, err)
		return nil, err
	}

	metrics, err := s.calculator.Calculate(base, upgrades)
	if err != nil {
		s.fail(OperationMetrics, bike, err)
		return nil, err
	}

	s.recorder.ObserveComputation(bike, metrics)
	return metrics, nil
}

// GenerateReport selects upgrades for bike within budget and summarizes the outcome
func (s *Service) GenerateReport(bike entities.BikeName, budget decimal.Decimal) (*dto.UpgradeReport, error) {
	selection, err := s.Select(bike, budget)
	if err != nil {
		return nil, err
	}

	metrics, err := s.ComputeMetrics(bike, selection.Selected)
	if err != nil {
		return nil, err
	}

	base, err := s.bikeRepo.GetBike(bike)
	if err != nil {
		return nil, err
	}

	installHours := lo.SumBy(selection.Selected, func(p entities.Part) float64 {
		return p.InstallationTime
	})

	report := &dto.UpgradeReport{
		ID:                uuid.New(),
		Bike:              *base,
		Budget:            budget,
		Upgrades:          selection.Selected,
		Skipped:           selection.Skipped,
		RemainingBudget:   selection.RemainingBudget,
		UpgradeSpend:      services.UpgradeCost(selection.Selected),
		Metrics:           *metrics,
		StageSummaries:    summarizeStages(selection.Selected),
		TotalInstallHours: installHours,
		GeneratedAt:       s.now(),
	}

	s.logger.Info("upgrade report generated",
		zap.String("report_id", report.ID.String()),
		zap.String("bike", string(bike)),
		zap.Int("upgrades", len(report.Upgrades)),
		zap.Float64("final_hp", metrics.FinalHP),
		zap.Float64("power_to_weight", metrics.PowerToWeight),
	)

	return report, nil
}

// summarizeStages groups the selected parts by stage, in stage order
func summarizeStages(parts []entities.Part) []dto.StageSummary {
	byStage := lo.GroupBy(parts, func(p entities.Part) entities.Stage {
		return p.Stage
	})

	summaries := make([]dto.StageSummary, 0, len(byStage))
	for _, stage := range []entities.Stage{entities.StageOne, entities.StageTwo, entities.StageThree} {
		stageParts, ok := byStage[stage]
		if !ok {
			continue
		}
		hpGain := lo.SumBy(stageParts, func(p entities.Part) float64 {
			return p.HPGain
		})
		summaries = append(summaries, dto.StageSummary{
			Stage:  stage,
			Parts:  len(stageParts),
			Spend:  services.UpgradeCost(stageParts),
			HPGain: hpGain,
		})
	}
	return summaries
}

func (s *Service) fail(operation string, bike entities.BikeName, err error) {
	s.logger.Error("upgrade operation failed",
		zap.String("operation", operation),
		zap.String("bike", string(bike)),
		zap.Error(err),
	)
	s.recorder.ObserveError(operation, err)
}
