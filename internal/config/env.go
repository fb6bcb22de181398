// Package config loads gocalc settings from the environment. Command-line
// flags override these values.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds environment defaults shared by the gocalc binaries.
type Config struct {
	Width        int        `env:"GOCALC_WIDTH" envDefault:"24"`
	JSON         bool       `env:"GOCALC_JSON" envDefault:"false"`
	LogLevel     slog.Level `env:"GOCALC_LOG_LEVEL" envDefault:"warn"`
	HistoryShown int        `env:"GOCALC_HISTORY_SHOWN" envDefault:"10"`
	MCPPort      int        `env:"GOCALC_MCP_PORT" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger returns a text logger writing to w at the configured level, or
// at debug level when verbose is set.
func (c Config) NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := c.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
