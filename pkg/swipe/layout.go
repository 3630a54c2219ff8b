package swipe

import (
	"math"

	"github.com/go-drift/swipe/pkg/geometry"
)

// LayoutInput is everything the actions layout depends on.
type LayoutInput struct {
	Count        int
	Side         Side
	Style        ActionsStyle
	VisibleWidth float64
	State        State
	Spacing      float64
	ActionWidth  float64
}

// ActionLayout is the computed frame of one action.
type ActionLayout struct {
	Index int
	// X is the left edge inside the actions strip.
	X     float64
	Width float64
	// Visible is false for actions hidden while the edge action triggers.
	Visible bool
	// ZIndex orders overlapping cascade actions; higher is on top.
	ZIndex int
	// Edge marks the outermost action.
	Edge bool
	// Highlighted is set on the edge action while it triggers.
	Highlighted bool
	// LabelAlignment places the label inside the frame.
	LabelAlignment Alignment
}

// VisibleWidth is the width uncovered by draggedLength, the offset measured
// toward the side (positive when the side is being revealed).
func VisibleWidth(draggedLength, spacing float64) float64 {
	return math.Max(0, draggedLength-spacing)
}

// EvenlyDistributedWidth splits visibleWidth between count actions. With no
// actions it returns fallback.
func EvenlyDistributedWidth(count int, visibleWidth, spacing, fallback float64) float64 {
	if count <= 0 {
		return fallback
	}
	n := float64(count)
	return (visibleWidth - spacing*(n-1)) / n
}

// Opacity ramps from 0 at start to 1 at end of the dragged length. A
// degenerate ramp (end <= start) yields 0.
func Opacity(draggedLength, start, end float64) float64 {
	span := end - start
	if !(span > 0) {
		return 0
	}
	percent := math.Max(0, draggedLength-start) / span
	return math.Min(1, percent)
}

// LayoutActions computes the frame of every action on one side.
func LayoutActions(in LayoutInput) []ActionLayout {
	if in.Count <= 0 {
		return nil
	}
	triggering := in.State == Triggering || in.State == Triggered
	edge := edgeIndex(in.Side, in.Count)

	width := EvenlyDistributedWidth(in.Count, in.VisibleWidth, in.Spacing, in.ActionWidth)
	if in.Style != StyleEqualWidths {
		width = math.Max(width, in.ActionWidth)
	}
	if width < 0 {
		width = 0
	}

	items := make([]ActionLayout, in.Count)
	for i := range items {
		item := ActionLayout{
			Index:          i,
			Width:          width,
			Visible:        true,
			Edge:           i == edge,
			LabelAlignment: AlignCenter,
		}
		if triggering {
			if item.Edge {
				item.Width = in.VisibleWidth
				item.Highlighted = true
				if in.Count == 1 {
					item.LabelAlignment = in.Side.edgeTriggerAlignment()
				}
			} else {
				item.Width = 0
				item.Visible = false
			}
		}
		if in.Style == StyleCascade {
			if in.Side == Leading {
				item.ZIndex = in.Count - i - 1
			} else {
				item.ZIndex = i
			}
		}
		items[i] = item
	}

	if in.Style == StyleCascade {
		// Every action shares the strip's inner edge.
		for i := range items {
			if in.Side == Leading {
				items[i].X = in.VisibleWidth - items[i].Width
			}
		}
		return items
	}
	x := 0.0
	for i := range items {
		items[i].X = x
		x += items[i].Width + in.Spacing
	}
	return items
}

// StripWidth is the width the laid out actions occupy.
func StripWidth(style ActionsStyle, visibleWidth, spacing float64, items []ActionLayout) float64 {
	if style == StyleCascade {
		return visibleWidth
	}
	if len(items) == 0 {
		return 0
	}
	total := spacing * float64(len(items)-1)
	for _, item := range items {
		total += item.Width
	}
	return total
}

// MaskRect is the rounded rectangle that uncovers a side's actions inside a
// row of the given size.
func MaskRect(side Side, rowSize geometry.Size, visibleWidth, cornerRadius float64) geometry.RRect {
	left := 0.0
	if side == Trailing {
		left = rowSize.Width - visibleWidth
	}
	rect := geometry.RectFromLTWH(left, 0, visibleWidth, rowSize.Height)
	return geometry.RRectFromRectAndRadius(rect, cornerRadius)
}
