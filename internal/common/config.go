package common

import (
	"os"
	"strconv"
	"time"

	"github.com/tripfolio/lodging-parser/constants"
)

// Config holds all application configuration
type Config struct {
	Parse   ParseConfig
	Extract ExtractConfig
	Log     LogConfig
}

// ParseConfig holds parser-related configuration
type ParseConfig struct {
	MaxInputBytes int
	Overrides     bool
}

// ExtractConfig holds text-extraction-related configuration
type ExtractConfig struct {
	Command string // external extractor binary (file -> text on stdout); empty = read files as plain text
	Timeout time.Duration
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Parse: ParseConfig{
			MaxInputBytes: getEnvAsInt("PARSE_MAX_INPUT_BYTES", constants.DefaultMaxInputBytes),
			Overrides:     getEnvAsBool("LODGING_OVERRIDES", true),
		},
		Extract: ExtractConfig{
			Command: getEnv("EXTRACT_COMMAND", ""),
			Timeout: getEnvAsDuration("EXTRACT_TIMEOUT", 2*time.Minute),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Parse.MaxInputBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "PARSE_MAX_INPUT_BYTES must be positive", ErrInvalidInput)
	}
	if c.Extract.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
