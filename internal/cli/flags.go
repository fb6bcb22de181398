package cli

import (
	"flag"

	"github.com/mamaar/gocalc/internal/config"
)

// Flags holds all command line flags
type Flags struct {
	Version      *bool
	Json         *bool
	Verbose      *bool
	Width        *int
	HistoryShown *int
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags defines the global flags on fs. Environment values from cfg
// become the flag defaults.
func InitFlags(fs *flag.FlagSet, cfg config.Config) *Flags {
	return &Flags{
		Version:      fs.Bool("version", false, "Show version information"),
		Json:         fs.Bool("json", cfg.JSON, "Output results in JSON format (GOCALC_JSON)"),
		Verbose:      fs.Bool("verbose", false, "Enable debug logging on stderr"),
		Width:        fs.Int("width", cfg.Width, "Inner width of the display in terminal cells (GOCALC_WIDTH)"),
		HistoryShown: fs.Int("history", cfg.HistoryShown, "Number of history entries to render, 0 for all (GOCALC_HISTORY_SHOWN)"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func(), cfg config.Config) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags(flag.CommandLine, cfg)
	}
	flag.Usage = usage
	flag.Parse()
}
