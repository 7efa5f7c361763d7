package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the CLI and library clients.
type Config struct {
	Euroleague EuroleagueConfig
	Log        LogConfig
	Metrics    MetricsConfig
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file (or the file named by HOOPSTER_ENV_FILE) is loaded first when
// present; variables already set in the environment win.
func Load() (Config, error) {
	if err := loadDotEnv(envOrDefault(envDotEnvFile, defaultDotEnvFile)); err != nil {
		return Config{}, err
	}
	return Config{
		Euroleague: loadEuroleague(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
