package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadAppliesFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[analysis]
parallel_threshold = 50
max_workers = 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
	if cfg.Analysis.ParallelThreshold != 50 {
		t.Fatalf("parallel_threshold = %d, want 50", cfg.Analysis.ParallelThreshold)
	}
	if cfg.Analysis.MaxWorkers != 4 {
		t.Fatalf("max_workers = %d, want 4", cfg.Analysis.MaxWorkers)
	}
	// Unset sections keep defaults.
	if cfg.Analysis.SerialSampleSize != 25 {
		t.Fatalf("serial_sample_size = %d, want default 25", cfg.Analysis.SerialSampleSize)
	}
	if !cfg.Extraction.Enabled {
		t.Fatal("extraction should default to enabled")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.Analysis.ParallelThreshold != 100 {
		t.Fatalf("parallel_threshold = %d, want default 100", cfg.Analysis.ParallelThreshold)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero threshold", func(c *config.Config) { c.Analysis.ParallelThreshold = -1 }, "parallel_threshold"},
		{"zero workers", func(c *config.Config) { c.Analysis.MaxWorkers = -1 }, "max_workers"},
		{"negative timeout", func(c *config.Config) { c.Analysis.JobTimeoutSeconds = -5 }, "job_timeout_seconds"},
		{"bad format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error writing over existing file")
	}
}
