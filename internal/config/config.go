package config

import (
	"os"
	"strconv"
	"strings"

	"smokestat/internal/errors"
)

// Default locations of the analysis input and output, relative to the working directory.
const (
	DefaultInputPath  = "Table1_SmokingVsCancer.csv"
	DefaultOutputPath = "index.html"
	DefaultAlpha      = 0.05
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Output   OutputConfig
	Analysis AnalysisConfig
	Logging  LoggingConfig
}

// DataConfig holds input settings
type DataConfig struct {
	InputPath string
}

// OutputConfig holds artifact settings
type OutputConfig struct {
	PagePath     string
	SnapshotDir  string
	PrintSummary bool
}

// AnalysisConfig holds model settings
type AnalysisConfig struct {
	// Alpha is the significance level of the prediction intervals (0.05 gives 95% bands).
	Alpha float64
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Data:     DataConfig{InputPath: DefaultInputPath},
		Output:   OutputConfig{PagePath: DefaultOutputPath, PrintSummary: true},
		Analysis: AnalysisConfig{Alpha: DefaultAlpha},
		Logging:  LoggingConfig{Level: "INFO"},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	alpha, err := getEnvFloat("SMOKESTAT_ALPHA", DefaultAlpha)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Data: DataConfig{
			InputPath: getEnvOrDefault("SMOKESTAT_INPUT", DefaultInputPath),
		},
		Output: OutputConfig{
			PagePath:     getEnvOrDefault("SMOKESTAT_OUTPUT", DefaultOutputPath),
			SnapshotDir:  getEnvOrDefault("SMOKESTAT_SNAPSHOT_DIR", ""),
			PrintSummary: getEnvBoolOrDefault("SMOKESTAT_PRINT_SUMMARY", true),
		},
		Analysis: AnalysisConfig{Alpha: alpha},
		Logging:  LoggingConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks a configuration for values the pipeline cannot run with
func Validate(config *Config) error {
	if strings.TrimSpace(config.Data.InputPath) == "" {
		return errors.ConfigInvalid("input path is required")
	}
	if strings.TrimSpace(config.Output.PagePath) == "" {
		return errors.ConfigInvalid("output path is required")
	}
	if !(config.Analysis.Alpha > 0 && config.Analysis.Alpha < 1) {
		return errors.ConfigInvalid("alpha must be between 0 and 1 (exclusive)")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat is strict: a set but unparsable value is a configuration error.
func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a number, got " + strconv.Quote(value))
	}
	return f, nil
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
