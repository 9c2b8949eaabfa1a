package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/vsinha/motoperf/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var seriesColors = []string{"#00B4D8", "#F72585", "#FFB703", "#8AC926", "#9B5DE5"}

// ScatterChart renders the cost versus horsepower gain comparison as a standalone HTML page
type ScatterChart struct {
	Width   int
	Height  int
	Padding int
	Title   string
	Now     func() time.Time
}

// ChartPoint is a single labelled part in the scatter plot
type ChartPoint struct {
	Label  string  `json:"label"`
	Stage  int     `json:"stage"`
	Cost   float64 `json:"cost"`
	HPGain float64 `json:"hpGain"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// ChartSeries groups the points of one bike
type ChartSeries struct {
	Name    string       `json:"name"`
	Color   string       `json:"color"`
	Points  []ChartPoint `json:"points"`
	LegendY float64      `json:"-"`
}

// ChartTick is an axis gridline with its label
type ChartTick struct {
	Label string
	Pos   float64
}

// ChartData contains everything the template needs
type ChartData struct {
	Title       string
	Width       int
	Height      int
	Left        float64
	Right       float64
	Top         float64
	Bottom      float64
	Series      []ChartSeries
	XTicks      []ChartTick
	YTicks      []ChartTick
	DataJSON    template.JS
	GeneratedAt string
}

// NewScatterChart creates a chart generator with default dimensions
func NewScatterChart() *ScatterChart {
	return &ScatterChart{
		Width:   1000,
		Height:  640,
		Padding: 70,
		Title:   "Cost vs Performance Gains by Motorcycle",
		Now:     time.Now,
	}
}

// Render writes the chart for the catalog, one series per bike in registry order.
// A part that fits several bikes appears in each of their series.
func (sc *ScatterChart) Render(w io.Writer, bikes []entities.Bike, parts []entities.Part) error {
	data, err := sc.buildChartData(bikes, parts)
	if err != nil {
		return err
	}

	tmpl, err := template.ParseFS(templateFS, "templates/scatter_chart.html")
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// buildChartData scales every part into plot coordinates
func (sc *ScatterChart) buildChartData(bikes []entities.Bike, parts []entities.Part) (*ChartData, error) {
	pad := float64(sc.Padding)
	data := &ChartData{
		Title:       sc.Title,
		Width:       sc.Width,
		Height:      sc.Height,
		Left:        pad,
		Right:       float64(sc.Width) - pad/2,
		Top:         pad / 2,
		Bottom:      float64(sc.Height) - pad,
		GeneratedAt: sc.Now().Format("2006-01-02 15:04:05"),
	}

	maxCost := niceCeil(lo.Max(lo.Map(parts, func(p entities.Part, _ int) float64 {
		return p.Cost.InexactFloat64()
	})))
	maxHP := niceCeil(lo.Max(lo.Map(parts, func(p entities.Part, _ int) float64 {
		return p.HPGain
	})))

	scaleX := func(v float64) float64 { return data.Left + v/maxCost*(data.Right-data.Left) }
	scaleY := func(v float64) float64 { return data.Bottom - v/maxHP*(data.Bottom-data.Top) }

	for i, bike := range bikes {
		series := ChartSeries{
			Name:    string(bike.Name),
			Color:   seriesColors[i%len(seriesColors)],
			LegendY: data.Top + float64(i)*18,
		}
		compatible := lo.Filter(parts, func(p entities.Part, _ int) bool {
			return p.CompatibleWith(bike.Name)
		})
		for _, part := range compatible {
			cost := part.Cost.InexactFloat64()
			series.Points = append(series.Points, ChartPoint{
				Label:  part.Name,
				Stage:  int(part.Stage),
				Cost:   cost,
				HPGain: part.HPGain,
				X:      scaleX(cost),
				Y:      scaleY(part.HPGain),
			})
		}
		data.Series = append(data.Series, series)
	}

	for i := 0; i <= 5; i++ {
		cost := maxCost * float64(i) / 5
		hp := maxHP * float64(i) / 5
		data.XTicks = append(data.XTicks, ChartTick{Label: fmt.Sprintf("$%.0f", cost), Pos: scaleX(cost)})
		data.YTicks = append(data.YTicks, ChartTick{Label: fmt.Sprintf("%g", math.Round(hp*10)/10), Pos: scaleY(hp)})
	}

	jsonData, err := json.Marshal(data.Series)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart data: %w", err)
	}
	data.DataJSON = template.JS(jsonData)

	return data, nil
}

// niceCeil rounds an axis maximum up to 1, 2 or 5 times a power of ten.
// Non-positive input yields 1 so the scale never divides by zero.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(v)))
	for _, step := range []float64{1, 2, 5, 10} {
		if v <= step*magnitude {
			return step * magnitude
		}
	}
	return 10 * magnitude
}
