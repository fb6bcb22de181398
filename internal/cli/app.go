package cli

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/mamaar/gocalc/internal/config"
)

// App represents the gocalc application
type App struct {
	flags  *Flags
	config config.Config
}

// NewApp creates a new application instance
func NewApp() *App {
	return &App{}
}

// Initialize loads environment defaults, parses flags over them and sets up
// the shared logger.
func (app *App) Initialize() {
	log.SetFlags(0) // Remove timestamp from log output

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	app.config = cfg

	ParseFlags(Usage, cfg)
	app.flags = GlobalFlags
	Logger = cfg.NewLogger(Stderr, *app.flags.Verbose)
}

// Run executes the application logic with the provided runner
func (app *App) Run(runner *Runner) {
	if *app.flags.Version {
		ShowVersion()
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		Usage()
		os.Exit(1)
	}

	if err := runner.Execute(args[0], args[1:]); err != nil {
		if errors.Is(err, ErrUnknownCommand) {
			Usage()
		}
		config.Exitf("Error: %v", err)
	}
}
