package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/swipe/cmd/swipesim/internal/report"
	"github.com/go-drift/swipe/pkg/swipe"
)

func layoutCmd() *cobra.Command {
	var (
		options   string
		sideName  string
		count     int
		offset    float64
		stateName string
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the frame of each action at a content offset",
		Example: `  swipesim layout --side trailing --count 3 --offset -240
  swipesim layout --side leading --count 1 --offset 300 --state triggering`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := swipe.ParseSide(sideName)
			if err != nil {
				return err
			}
			state, err := swipe.ParseState(stateName)
			if err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("action count must not be negative")
			}
			opts, err := loadOptions("swipesim.layout", options)
			if err != nil {
				return err
			}

			dragged := offset * side.Sign()
			items := swipe.LayoutActions(swipe.LayoutInput{
				Count:        count,
				Side:         side,
				Style:        opts.ActionsStyle,
				VisibleWidth: swipe.VisibleWidth(dragged, opts.Spacing),
				State:        state,
				Spacing:      opts.Spacing,
				ActionWidth:  opts.ActionWidth,
			})
			opacity := swipe.Opacity(dragged, opts.ActionsVisibleStartPoint, opts.ActionsVisibleEndPoint)
			title := fmt.Sprintf("%s %s, %s", side, opts.ActionsStyle, state)
			return report.Layout(cmd.OutOrStdout(), title, items, opacity)
		},
	}
	cmd.Flags().StringVar(&options, "options", "", "options file (default: built-in defaults)")
	cmd.Flags().StringVar(&sideName, "side", "trailing", "leading or trailing")
	cmd.Flags().IntVar(&count, "count", 2, "number of actions on the side")
	cmd.Flags().Float64Var(&offset, "offset", -216, "content offset (positive reveals leading)")
	cmd.Flags().StringVar(&stateName, "state", "none", "side state: none, closed, expanded, triggering or triggered")
	return cmd
}
