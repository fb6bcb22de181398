package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Width: 24, LogLevel: slog.LevelWarn, HistoryShown: 10}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOCALC_WIDTH", "40")
	t.Setenv("GOCALC_JSON", "true")
	t.Setenv("GOCALC_LOG_LEVEL", "debug")
	t.Setenv("GOCALC_HISTORY_SHOWN", "3")
	t.Setenv("GOCALC_MCP_PORT", "8088")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Width: 40, JSON: true, LogLevel: slog.LevelDebug, HistoryShown: 3, MCPPort: 8088}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("GOCALC_WIDTH", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn}

	cfg.NewLogger(&buf, false).Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %q", buf.String())
	}

	cfg.NewLogger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("verbose logger should emit debug, got %q", buf.String())
	}
}
