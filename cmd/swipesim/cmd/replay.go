package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/swipe/cmd/swipesim/internal/report"
	"github.com/go-drift/swipe/cmd/swipesim/internal/sim"
	"github.com/go-drift/swipe/cmd/swipesim/internal/trace"
)

type replayFlags struct {
	trace   string
	options string
	fps     int
	settle  time.Duration
	watch   bool
}

func replayCmd() *cobra.Command {
	var f replayFlags
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a drag trace and print every row after every event",
		Example: `  swipesim replay --trace inbox.yaml
  swipesim replay --trace inbox.yaml --options options.yaml --fps 120 --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !f.watch {
				_, err := runReplay(cmd.OutOrStdout(), f)
				return err
			}
			paths, err := runReplay(cmd.OutOrStdout(), f)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if len(paths) == 0 {
				paths = []string{f.trace}
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watching %v\n", paths)
			return watchFiles(cmd.Context(), paths, func() {
				if _, err := runReplay(cmd.OutOrStdout(), f); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			})
		},
	}
	cmd.Flags().StringVar(&f.trace, "trace", "", "trace file to replay (required)")
	cmd.Flags().StringVar(&f.options, "options", "", "options file (default: the trace's options key)")
	cmd.Flags().IntVar(&f.fps, "fps", 60, "frame rate animations are stepped at")
	cmd.Flags().DurationVar(&f.settle, "settle", 10*time.Second, "longest to wait for rows to settle after the last event")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "replay again whenever the trace or options file changes")
	_ = cmd.MarkFlagRequired("trace")
	return cmd
}

// runReplay replays once and returns the files it read.
func runReplay(w io.Writer, f replayFlags) ([]string, error) {
	tr, err := trace.Load(f.trace)
	if err != nil {
		return nil, err
	}
	paths := []string{f.trace}
	optionsPath := f.options
	if optionsPath == "" {
		optionsPath = tr.OptionsPath()
	}
	if optionsPath != "" {
		paths = append(paths, optionsPath)
	}
	opts, err := loadOptions("swipesim.replay", optionsPath)
	if err != nil {
		return paths, err
	}

	results, err := sim.Replay(tr, sim.Config{Options: opts, FPS: f.fps, SettleTimeout: f.settle})
	if rerr := report.Results(w, results); rerr != nil {
		return paths, rerr
	}
	return paths, err
}
