package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeExtraction()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OrganizedDir) != "" {
		if c.Paths.OrganizedDir, err = expandPath(c.Paths.OrganizedDir); err != nil {
			return fmt.Errorf("paths.organized_dir: %w", err)
		}
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	if c.Analysis.ParallelThreshold == 0 {
		c.Analysis.ParallelThreshold = defaultParallelThreshold
	}
	if c.Analysis.MaxWorkers == 0 {
		c.Analysis.MaxWorkers = defaultMaxWorkers
	}
	if c.Analysis.SerialSampleSize == 0 {
		c.Analysis.SerialSampleSize = defaultSerialSampleSize
	}
}

func (c *Config) normalizeExtraction() {
	if c.Extraction.MaxBytes == 0 {
		c.Extraction.MaxBytes = defaultExtractionBytes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
