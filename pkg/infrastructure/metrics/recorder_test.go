package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/vsinha/motoperf/pkg/application/services/upgrade"
	"github.com/vsinha/motoperf/pkg/domain/entities"
	testhelpers "github.com/vsinha/motoperf/pkg/infrastructure/testing"
)

func TestRecorder(t *testing.T) {
	Convey("Given a recorder wired into the upgrade service", t, func() {
		recorder := NewRecorder()
		bikeRepo, partRepo := testhelpers.BuildReferenceRepositories()
		svc := upgrade.NewService(bikeRepo, partRepo, nil, upgrade.WithMetricsRecorder(recorder))

		Convey("When a report is generated for the Ducati V4", func() {
			_, err := svc.GenerateReport(testhelpers.DucatiV4, decimal.NewFromInt(15000))
			So(err, ShouldBeNil)

			Convey("Then the selection is counted", func() {
				So(testutil.ToFloat64(recorder.selections.WithLabelValues("Ducati V4")), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.partsSelected.WithLabelValues("Ducati V4")), ShouldEqual, 8)
				So(testutil.ToFloat64(recorder.partsSkipped.WithLabelValues("Ducati V4")), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.remainingBudget.WithLabelValues("Ducati V4")), ShouldAlmostEqual, 3510.08, 0.0001)
			})

			Convey("Then the metrics computation is recorded", func() {
				So(testutil.ToFloat64(recorder.computations.WithLabelValues("Ducati V4")), ShouldEqual, 1)
				So(testutil.ToFloat64(recorder.finalHP.WithLabelValues("Ducati V4")), ShouldEqual, 251)
				So(testutil.ToFloat64(recorder.powerToWeight.WithLabelValues("Ducati V4")), ShouldAlmostEqual, 298.79, 0.005)
			})
		})

		Convey("When an unknown bike is requested", func() {
			_, err := svc.SelectUpgrades("Honda CBR", decimal.NewFromInt(1000))
			So(err, ShouldNotBeNil)

			Convey("Then the error is counted by kind", func() {
				So(testutil.ToFloat64(recorder.errors.WithLabelValues(upgrade.OperationSelect, "unknown_bike")), ShouldEqual, 1)
			})
		})

		Convey("When metrics are computed for a zero final weight", func() {
			bike, err := bikeRepo.GetBike(testhelpers.DucatiV4)
			So(err, ShouldBeNil)
			ballast := entities.Part{Name: "Ballast", WeightReduction: bike.BaseWeight}

			_, err = svc.ComputeMetrics(testhelpers.DucatiV4, []entities.Part{ballast})
			So(err, ShouldNotBeNil)

			Convey("Then a division by zero is counted", func() {
				So(testutil.ToFloat64(recorder.errors.WithLabelValues(upgrade.OperationMetrics, "division_by_zero")), ShouldEqual, 1)
			})
		})
	})
}

func TestRecorder_WriteToTextfile(t *testing.T) {
	Convey("Given a recorder with one observed selection", t, func() {
		recorder := NewRecorder()
		recorder.ObserveSelection("Yamaha R1", 3, 6, decimal.RequireFromString("10.5"))

		Convey("When it is written to a textfile", func() {
			filename := filepath.Join(t.TempDir(), "motoperf.prom")
			So(recorder.WriteToTextfile(filename), ShouldBeNil)

			Convey("Then the file holds the exposition format", func() {
				data, err := os.ReadFile(filename)
				So(err, ShouldBeNil)
				text := string(data)
				So(strings.Contains(text, `motoperf_upgrades_parts_selected_total{bike="Yamaha R1"} 3`), ShouldBeTrue)
				So(strings.Contains(text, `motoperf_upgrades_remaining_budget{bike="Yamaha R1"} 10.5`), ShouldBeTrue)
			})
		})
	})
}
