// Package config defines CLI configuration and its layered loading.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Output formats understood by the report command
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Bike is the registry name the report is produced for.
	Bike string `koanf:"bike"`

	// Budget is the spend limit for upgrade selection.
	Budget float64 `koanf:"budget"`

	// CatalogFile optionally replaces the embedded catalog (.yaml, .yml or .csv).
	CatalogFile string `koanf:"catalog_file"`

	// Format selects the report rendering: text or json.
	Format string `koanf:"format"`

	// ChartFile is where the chart command writes its HTML output.
	ChartFile string `koanf:"chart_file"`

	// MetricsFile, when set, receives a Prometheus textfile dump after each command.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults
func New() *Config {
	return &Config{
		LogLevel:  "info",
		Bike:      "Ducati V4",
		Budget:    15000.0,
		Format:    FormatText,
		ChartFile: "performance_comparison.html",
	}
}

// Validate checks the fields that have a closed set of values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Bike) == "" {
		return errors.New("bike must not be empty")
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format: %s", c.Format)
	}
	return nil
}
