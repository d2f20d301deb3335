package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateExtraction(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.ParallelThreshold < 1 {
		return errors.New("analysis.parallel_threshold must be positive")
	}
	if c.Analysis.MaxWorkers < 1 {
		return errors.New("analysis.max_workers must be positive")
	}
	if c.Analysis.SerialSampleSize < 1 {
		return errors.New("analysis.serial_sample_size must be positive")
	}
	if c.Analysis.JobTimeoutSeconds < 0 {
		return errors.New("analysis.job_timeout_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateExtraction() error {
	if c.Extraction.Enabled && c.Extraction.MaxBytes < 1 {
		return errors.New("extraction.max_bytes must be positive when extraction.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
