package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/vsinha/motoperf/pkg/application/services/upgrade"
	"github.com/vsinha/motoperf/pkg/infrastructure/config"
	"github.com/vsinha/motoperf/pkg/infrastructure/logging"
	"github.com/vsinha/motoperf/pkg/infrastructure/metrics"
	"github.com/vsinha/motoperf/pkg/infrastructure/repositories/memory"
)

// Environment is everything a command needs: resolved configuration, the
// loaded repositories and the upgrade service wired over them
type Environment struct {
	Config   *config.Config
	Logger   *logging.Logger
	Recorder *metrics.Recorder
	Bikes    *memory.BikeRepository
	Parts    *memory.PartRepository
	Service  *upgrade.Service
	Out      io.Writer
}

// NewEnvironment loads the configured catalog into memory and builds the service
func NewEnvironment(cfg *config.Config, logger *logging.Logger, out io.Writer) (*Environment, error) {
	catalog, err := LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	bikes := memory.NewBikeRepository(len(catalog.Bikes))
	if err := bikes.LoadBikes(catalog.Bikes); err != nil {
		return nil, fmt.Errorf("failed to load bikes into repository: %w", err)
	}

	parts := memory.NewPartRepository(len(catalog.Parts))
	if err := parts.LoadParts(catalog.Parts); err != nil {
		return nil, fmt.Errorf("failed to load parts into repository: %w", err)
	}

	source := cfg.CatalogFile
	if source == "" {
		source = "embedded"
	}
	logger.Debug("catalog loaded",
		logging.String("source", source),
		logging.Int("bikes", len(catalog.Bikes)),
		logging.Int("parts", len(catalog.Parts)),
	)

	recorder := metrics.NewRecorder()
	return &Environment{
		Config:   cfg,
		Logger:   logger,
		Recorder: recorder,
		Bikes:    bikes,
		Parts:    parts,
		Service:  upgrade.NewService(bikes, parts, logger, upgrade.WithMetricsRecorder(recorder)),
		Out:      out,
	}, nil
}

// Close dumps the collected metrics when a metrics file is configured
func (e *Environment) Close() error {
	var errs []error
	if e.Config.MetricsFile != "" {
		if err := e.Recorder.WriteToTextfile(e.Config.MetricsFile); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics file: %w", err))
		} else {
			e.Logger.Debug("metrics written", logging.String("file", e.Config.MetricsFile))
		}
	}
	// Sync on stderr returns EINVAL on some platforms; nothing useful to report.
	_ = e.Logger.Sync()
	return errors.Join(errs...)
}
