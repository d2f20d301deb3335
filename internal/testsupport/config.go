package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.OrganizedDir = filepath.Join(base, "organized")
	cfg.Paths.APIBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithParallelThreshold overrides the serial/parallel cutover for tests that
// want small batches to exercise the parallel path.
func WithParallelThreshold(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analysis.ParallelThreshold = n
	}
}

// WithMaxWorkers caps the worker pool on the test config.
func WithMaxWorkers(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Analysis.MaxWorkers = n
	}
}

// WithExtraction toggles content extraction on the test config.
func WithExtraction(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extraction.Enabled = enabled
	}
}
