package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"cidrcalc/internal/report"
)

// Environment variables read by LoadConfig.
const (
	EnvOutput   = "CIDRCALC_OUTPUT"
	EnvColor    = "CIDRCALC_COLOR"
	EnvLogLevel = "CIDRCALC_LOG_LEVEL"
	EnvExport   = "CIDRCALC_EXPORT"
	EnvNoColor  = "NO_COLOR"
)

// DefaultEnvFile is loaded when present; it is never required.
const DefaultEnvFile = ".env"

// Config holds runtime wiring options for building the app.
type Config struct {
	Output   report.Format // text or json
	Color    bool          // colorize text output
	LogLevel string        // charmbracelet/log level name
	Export   string        // optional path the result is also written to
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Output:   report.FormatText,
		Color:    true,
		LogLevel: "warn",
	}
}

// LoadConfig starts from DefaultConfig, loads envFile into the process
// environment (a missing file is not an error) and applies CIDRCALC_*
// variables. Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvOutput); ok {
		f, err := report.ParseFormat(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvOutput, err)
		}
		cfg.Output = f
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvColor, err)
		}
		cfg.Color = b
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Color = false
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvExport); ok {
		cfg.Export = v
	}
	return cfg, nil
}
