package analysis

import (
	"log/slog"
	"time"

	"sortd/internal/config"
	"sortd/internal/extract"
)

// NewCoordinatorFromConfig wires a Coordinator from runtime configuration.
// The organizer may be nil when organizing is disabled or unavailable.
func NewCoordinatorFromConfig(cfg *config.Config, logger *slog.Logger, organizer Organizer) *Coordinator {
	opts := Options{
		ParallelThreshold: cfg.Analysis.ParallelThreshold,
		MaxWorkers:        cfg.Analysis.MaxWorkers,
		SerialSampleSize:  cfg.Analysis.SerialSampleSize,
		Organizer:         organizer,
		Logger:            logger,
	}
	if seconds, ok := cfg.JobTimeout(); ok {
		opts.JobTimeout = time.Duration(seconds) * time.Second
	}
	if cfg.Extraction.Enabled {
		opts.Extractor = extract.NewTextSniffer(cfg.Extraction.MaxBytes)
	}
	return NewCoordinator(opts)
}
