// Package metrics exposes Prometheus instrumentation for upgrade planning runs.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/vsinha/motoperf/pkg/application/services/upgrade"
	"github.com/vsinha/motoperf/pkg/domain/entities"
)

const (
	namespace = "motoperf"
	subsystem = "upgrades"
)

// Recorder implements upgrade.MetricsRecorder on a Prometheus registry
type Recorder struct {
	registry *prometheus.Registry

	selections      *prometheus.CounterVec
	partsSelected   *prometheus.CounterVec
	partsSkipped    *prometheus.CounterVec
	remainingBudget *prometheus.GaugeVec
	computations    *prometheus.CounterVec
	finalHP         *prometheus.GaugeVec
	powerToWeight   *prometheus.GaugeVec
	errors          *prometheus.CounterVec
}

// Verify interface compliance
var _ upgrade.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder with its own registry so runs do not share state
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Recorder{
		registry: registry,
		selections: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "selections_total",
			Help:      "Number of greedy upgrade selections run",
		}, []string{"bike"}),
		partsSelected: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "parts_selected_total",
			Help:      "Parts picked by upgrade selections",
		}, []string{"bike"}),
		partsSkipped: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "parts_skipped_total",
			Help:      "Parts skipped by upgrade selections for lack of budget",
		}, []string{"bike"}),
		remainingBudget: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "remaining_budget",
			Help:      "Budget left after the latest selection",
		}, []string{"bike"}),
		computations: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "metric_computations_total",
			Help:      "Number of performance metric computations",
		}, []string{"bike"}),
		finalHP: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "final_hp",
			Help:      "Final horsepower of the latest computation",
		}, []string{"bike"}),
		powerToWeight: auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "power_to_weight",
			Help:      "Power-to-weight of the latest computation",
		}, []string{"bike"}),
		errors: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "errors_total",
			Help:      "Failed operations by operation and error kind",
		}, []string{"operation", "kind"}),
	}
}

// ObserveSelection records the outcome of one greedy selection
func (r *Recorder) ObserveSelection(bike entities.BikeName, selected, skipped int, remaining decimal.Decimal) {
	label := string(bike)
	r.selections.WithLabelValues(label).Inc()
	r.partsSelected.WithLabelValues(label).Add(float64(selected))
	r.partsSkipped.WithLabelValues(label).Add(float64(skipped))
	r.remainingBudget.WithLabelValues(label).Set(remaining.InexactFloat64())
}

// ObserveComputation records a successful metrics computation
func (r *Recorder) ObserveComputation(bike entities.BikeName, metrics *entities.PerformanceMetrics) {
	label := string(bike)
	r.computations.WithLabelValues(label).Inc()
	r.finalHP.WithLabelValues(label).Set(metrics.FinalHP)
	r.powerToWeight.WithLabelValues(label).Set(metrics.PowerToWeight)
}

// ObserveError records a failed operation
func (r *Recorder) ObserveError(operation string, err error) {
	r.errors.WithLabelValues(operation, errorKind(err)).Inc()
}

// Registry returns the registry backing the recorder
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteToTextfile dumps the collected metrics in the Prometheus text format
func (r *Recorder) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, r.registry)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, entities.ErrUnknownBike):
		return "unknown_bike"
	case errors.Is(err, entities.ErrDivisionByZero):
		return "division_by_zero"
	default:
		return "other"
	}
}
