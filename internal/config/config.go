package config

import (
	"os"
	"strconv"

	"solvestats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
	Chart  ChartConfig
}

// DataConfig holds solve export settings. SolvesFile is deliberately
// required rather than defaulted to some directory on disk.
type DataConfig struct {
	SolvesFile    string
	Delimiter     string
	SkipMalformed bool
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ChartConfig holds chart rendering settings
type ChartConfig struct {
	OutputPath  string
	Title       string
	NormalCurve bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data: DataConfig{
			SolvesFile:    os.Getenv("SOLVES_FILE"),
			Delimiter:     getEnvOrDefault("SOLVES_DELIMITER", ";"),
			SkipMalformed: getEnvBool("SOLVES_SKIP_MALFORMED", false),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Chart: ChartConfig{
			OutputPath:  os.Getenv("CHART_OUTPUT"),
			Title:       getEnvOrDefault("CHART_TITLE", "3x3 Solve Histogram"),
			NormalCurve: getEnvBool("CHART_NORMAL_CURVE", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.SolvesFile == "" {
		return errors.ConfigInvalid("SOLVES_FILE is required")
	}
	if len(config.Data.Delimiter) != 1 {
		return errors.ConfigInvalid("SOLVES_DELIMITER must be a single character")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
