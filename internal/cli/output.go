package cli

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/mamaar/gocalc/pkg/display"
)

// Streams used by commands. Tests swap them for buffers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
	Stdin  io.Reader = os.Stdin
)

// Logger is the application logger, set up by App.Initialize.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// JSONOutput reports whether results should be written as JSON.
func JSONOutput() bool {
	return GlobalFlags != nil && *GlobalFlags.Json
}

// NewRenderer returns a display renderer sized by the global flags.
func NewRenderer() *display.Renderer {
	if GlobalFlags == nil {
		return display.NewRenderer(display.DefaultWidth, 0)
	}
	return display.NewRenderer(*GlobalFlags.Width, *GlobalFlags.HistoryShown)
}

// OutputJSON writes data to Stdout as indented JSON.
func OutputJSON(data any) error {
	encoder := json.NewEncoder(Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
