// Package cli holds the initialization steps shared by cmd/moneytracker
// and cmd/ledger-worker.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"moneytracker/internal/config"
	applog "moneytracker/internal/log"
)

// SetupLogger builds the process logger and installs it as the slog
// default.
func SetupLogger(component string) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Component = component
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored because the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
