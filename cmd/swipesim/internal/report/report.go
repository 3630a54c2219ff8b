// Package report renders swipesim output as styled tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/swipe/cmd/swipesim/internal/sim"
	"github.com/go-drift/swipe/pkg/swipe"
)

var (
	colorBorder = lipgloss.Color("#44475A")
	colorHeader = lipgloss.Color("#BD93F9")
	colorMuted  = lipgloss.Color("#6272A4")
	colorError  = lipgloss.Color("#FF5555")
	colorActive = lipgloss.Color("#50FA7B")

	headerStyle = lipgloss.NewStyle().Foreground(colorHeader).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = cellStyle.Foreground(colorMuted)
	errorStyle  = cellStyle.Foreground(colorError)
	activeStyle = cellStyle.Foreground(colorActive)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Results writes one table row per replay result.
func Results(w io.Writer, results []sim.Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Step),
			r.At.String(),
			r.Row,
			string(r.Event),
			number(r.Offset),
			number(r.Presented),
			r.Leading.String(),
			r.Trailing.String(),
			transitions(r.Transitions),
			haptics(r.Haptics),
			strings.Join(r.Triggered, ","),
			errText,
		})
	}
	t := newTable("#", "at", "row", "event", "offset", "presented", "leading", "trailing", "transitions", "haptics", "triggered", "error").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(rows):
				return cellStyle
			case col == 11 && rows[row][col] != "":
				return errorStyle
			case col == 3 && (rows[row][col] == string(sim.Group) || rows[row][col] == string(sim.Settle)):
				return mutedStyle
			case col == 10 && rows[row][col] != "":
				return activeStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func transitions(ts []swipe.Transition) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func haptics(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Thresholds writes the thresholds of each side.
func Thresholds(w io.Writer, ths ...swipe.Thresholds) error {
	rows := make([][]string, 0, len(ths))
	for _, th := range ths {
		rows = append(rows, []string{
			th.Side.String(),
			number(th.ReadyToExpand),
			number(th.Expanded),
			number(th.ReadyToTrigger),
			number(th.Triggered),
		})
	}
	t := newTable("side", "ready to expand", "expanded", "ready to trigger", "triggered").
		Rows(rows...).
		StyleFunc(headerOrCell)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Layout writes the frame of every action on one side.
func Layout(w io.Writer, title string, items []swipe.ActionLayout, opacity float64) error {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(item.Index),
			number(item.X),
			number(item.Width),
			strconv.FormatBool(item.Visible),
			strconv.Itoa(item.ZIndex),
			strconv.FormatBool(item.Edge),
			strconv.FormatBool(item.Highlighted),
			item.LabelAlignment.String(),
		})
	}
	t := newTable("index", "x", "width", "visible", "z", "edge", "highlighted", "label").
		Rows(rows...).
		StyleFunc(headerOrCell)
	heading := titleStyle.Render(fmt.Sprintf("%s (opacity %.2f)", title, opacity))
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, heading, t.Render()))
	return err
}

func headerOrCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
