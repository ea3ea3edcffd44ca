// Package cli consolidates the process bootstrap shared by the binaries:
// env file, logging, configuration, and store construction.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/snehilworks/finance-expense/internal/backend"
	"github.com/snehilworks/finance-expense/internal/config"
	applog "github.com/snehilworks/finance-expense/internal/log"
)

// SetupLogger initializes structured logging and sets the default logger.
func SetupLogger() *slog.Logger {
	return applog.Setup()
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting the
// process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore constructs the configured Store backend, exiting the process
// on failure.
func OpenStore(logger *slog.Logger, cfg *config.Config) *backend.Result {
	factory := backend.NewFactory(logger)
	result, err := factory.CreateStore(backend.Config{
		Type:   backend.Type(cfg.DataBackend),
		DBPath: cfg.DBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize store backend",
			"error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return result
}
