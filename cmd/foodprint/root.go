package main

import (
	"os"

	"github.com/spf13/cobra"

	"foodprint/internal/config"
	"foodprint/internal/logging"
	"foodprint/internal/version"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
	// logFormatFlag is the CLI --log-format flag value
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "foodprint",
	Short: "foodprint - recipe carbon impact calculator",
	Long: `foodprint computes the carbon-impact footprint of recipes by resolving
each ingredient to a food-classification taxonomy entry and aggregating
weighted per-kilogram impact values. Classes without a direct impact
value inherit it from their nearest ancestor that has one.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("foodprint version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: json or human")
}

// resolveLogLevel determines the effective log level.
// Precedence: CLI flag > FOODPRINT_LOG_LEVEL env var > config > info
func resolveLogLevel(cfg *config.Config) logging.LogLevel {
	// 1. CLI flag (highest priority)
	if logLevelFlag != "" {
		return logging.ParseLevel(logLevelFlag)
	}

	// 2. Environment variable
	if env := os.Getenv("FOODPRINT_LOG_LEVEL"); env != "" {
		return logging.ParseLevel(env)
	}

	// 3. Config file default
	if cfg != nil && cfg.Logging.Level != "" {
		return logging.ParseLevel(cfg.Logging.Level)
	}

	return logging.InfoLevel
}

// resolveLogFormat determines the effective log format with the same
// precedence as resolveLogLevel.
func resolveLogFormat(cfg *config.Config) logging.Format {
	format := ""
	switch {
	case logFormatFlag != "":
		format = logFormatFlag
	case os.Getenv("FOODPRINT_LOG_FORMAT") != "":
		format = os.Getenv("FOODPRINT_LOG_FORMAT")
	case cfg != nil:
		format = cfg.Logging.Format
	}

	if format == string(logging.JSONFormat) {
		return logging.JSONFormat
	}
	return logging.HumanFormat
}

// newLogger creates a logger honoring flags, environment, and config
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: resolveLogFormat(cfg),
		Level:  resolveLogLevel(cfg),
	})
}
