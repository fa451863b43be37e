package config

import (
	"os"
	"strconv"

	"viromex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	MaxUploadBytes int64
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	// DataFile optionally preloads a count table at startup so the
	// dashboard is populated before the first upload.
	DataFile string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

const defaultMaxUploadBytes = 32 << 20 // 32 MiB

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8080"),
			MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		},
		Data: DataConfig{
			DataFile: getEnvOrDefault("DATA_FILE", ""),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if config.Data.DataFile != "" {
		if _, err := os.Stat(config.Data.DataFile); err != nil {
			return errors.ConfigInvalid("DATA_FILE does not exist: " + config.Data.DataFile)
		}
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
