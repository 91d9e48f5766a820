package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"cidrcalc/internal/report"
	"cidrcalc/internal/services/calculator"
)

// NewWire constructs the dependency graph from cfg. Diagnostics go to logOut,
// or stderr when it is nil.
func NewWire(cfg Config, logOut io.Writer) (*App, error) {
	format, err := report.ParseFormat(string(cfg.Output))
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	logger := log.NewWithOptions(logOut, log.Options{
		Level:  level,
		Prefix: "cidrcalc",
	})

	return New(calculator.New(), report.New(format, cfg.Color), logger, cfg.Export), nil
}
