// Package cmd implements the swipesim CLI.
//
// swipesim replays recorded drag traces through swipe rows on a simulated
// clock and prints what the rows did, frame by frame. It also prints the
// thresholds and action layout a set of options produces.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/swipe"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:     "swipesim",
		Short:   "Replay swipe gestures through swipeable rows",
		Version: Version + " (built " + BuildTime + ")",
		Long: `swipesim drives swipeable rows with recorded drag traces and reports
offsets, states, haptics and triggered actions after every event.

Use "swipesim <command> --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			errors.SetHandler(&errors.LogHandler{Verbose: verbose, Out: cmd.ErrOrStderr()})
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log errors with kind, row and stack trace")

	root.AddCommand(replayCmd(), thresholdsCmd(), layoutCmd())
	return root
}

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// loadOptions reads options from path, or returns the defaults when path is
// empty. Malformed values are reported and clamped.
func loadOptions(op, path string) (swipe.Options, error) {
	opts := swipe.DefaultOptions()
	if path != "" {
		var err error
		if opts, err = swipe.LoadOptions(path); err != nil {
			return swipe.Options{}, err
		}
	}
	if err := opts.Validate(); err != nil {
		errors.Report(&errors.SwipeError{Op: op, Kind: errors.KindConfig, Err: err})
	}
	return opts.Sanitized(), nil
}
