package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/swipe/cmd/swipesim/internal/report"
	"github.com/go-drift/swipe/pkg/swipe"
)

func thresholdsCmd() *cobra.Command {
	var (
		options  string
		leading  int
		trailing int
		width    float64
	)
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Print the offsets at which each side expands and triggers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if leading < 0 || trailing < 0 {
				return fmt.Errorf("action counts must not be negative")
			}
			opts, err := loadOptions("swipesim.thresholds", options)
			if err != nil {
				return err
			}
			return report.Thresholds(cmd.OutOrStdout(),
				swipe.ComputeThresholds(swipe.Leading, opts, leading, width),
				swipe.ComputeThresholds(swipe.Trailing, opts, trailing, width),
			)
		},
	}
	cmd.Flags().StringVar(&options, "options", "", "options file (default: built-in defaults)")
	cmd.Flags().IntVar(&leading, "leading", 1, "number of leading actions")
	cmd.Flags().IntVar(&trailing, "trailing", 1, "number of trailing actions")
	cmd.Flags().Float64Var(&width, "width", 390, "row content width")
	return cmd
}
