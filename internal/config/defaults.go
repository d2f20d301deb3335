package config

const (
	defaultDataDir           = "~/.local/share/sortd"
	defaultLogDir            = "~/.local/share/sortd/logs"
	defaultOrganizedDir      = "~/sorted"
	defaultAPIBind           = "127.0.0.1:7519"
	defaultParallelThreshold = 100
	defaultMaxWorkers        = 8
	defaultSerialSampleSize  = 25
	defaultJobTimeoutSeconds = 300
	defaultExtractionBytes   = 64 * 1024
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			LogDir:       defaultLogDir,
			OrganizedDir: defaultOrganizedDir,
			APIBind:      defaultAPIBind,
		},
		Analysis: Analysis{
			ParallelThreshold: defaultParallelThreshold,
			MaxWorkers:        defaultMaxWorkers,
			SerialSampleSize:  defaultSerialSampleSize,
			JobTimeoutSeconds: defaultJobTimeoutSeconds,
		},
		Extraction: Extraction{
			Enabled:  true,
			MaxBytes: defaultExtractionBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
