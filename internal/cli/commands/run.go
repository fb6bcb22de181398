package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/display"
	"github.com/mamaar/gocalc/pkg/types"
	"github.com/mamaar/gocalc/pkg/watch"
)

const runUsage = "gocalc run [-watch] [-debounce d] <script>"

// RunCommand evaluates a key script. With -watch it keeps running and
// evaluates the script again every time it is saved.
func RunCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(cli.Stderr)
	follow := fs.Bool("watch", false, "Re-run the script whenever it changes")
	debounce := fs.Duration("debounce", watch.DefaultDebounce, "Quiet period before a change is evaluated")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("run", runUsage)
	}
	path := fs.Arg(0)

	if !*follow {
		res := watch.NewRerunner(path, nil, cli.Logger).Evaluate()
		if res.Err != nil {
			return res.Err
		}
		return printResult(res)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return followScript(ctx, path, *debounce)
}

func followScript(ctx context.Context, path string, debounce time.Duration) error {
	w, err := watch.NewWatcher([]string{path}, debounce, cli.Logger)
	if err != nil {
		return &types.CalcError{Type: types.WatchError, Message: "cannot watch script", Key: path, Cause: err}
	}
	defer func() { _ = w.Close() }()

	report := func(res watch.Result) {
		if !cli.JSONOutput() {
			fmt.Fprintf(cli.Stdout, "\n# %s at %s\n", res.Path, time.Now().Format(time.TimeOnly))
		}
		if res.Err != nil {
			fmt.Fprintf(cli.Stderr, "error: %v\n", res.Err)
			return
		}
		if err := printResult(res); err != nil {
			cli.Logger.Error("print result", "err", err)
		}
	}

	err = watch.NewRerunner(path, report, cli.Logger).Follow(ctx, w)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printResult writes the display after each script line followed by the
// final screen and history.
func printResult(res watch.Result) error {
	if cli.JSONOutput() {
		return cli.OutputJSON(res)
	}

	tw := tabwriter.NewWriter(cli.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range res.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Line, l.Keys, l.State.Display())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	final := types.NewEngineState()
	if n := len(res.Lines); n > 0 {
		final = res.Lines[n-1].State
	}
	return cli.NewRenderer().Render(cli.Stdout, display.Build(final, res.History))
}
