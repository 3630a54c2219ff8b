package swipe

import (
	"testing"

	"github.com/go-drift/swipe/pkg/geometry"
)

func TestOpacity(t *testing.T) {
	tests := []struct {
		dragged, start, end float64
		want                float64
	}{
		{0, 50, 100, 0},
		{50, 50, 100, 0},
		{75, 50, 100, 0.5},
		{100, 50, 100, 1},
		{400, 50, 100, 1},
		{-80, 50, 100, 0},
		{75, 100, 100, 0},
	}
	for _, tt := range tests {
		if got := Opacity(tt.dragged, tt.start, tt.end); got != tt.want {
			t.Errorf("Opacity(%v, %v, %v) = %v, want %v", tt.dragged, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	if got := VisibleWidth(108, 8); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := VisibleWidth(4, 8); got != 0 {
		t.Errorf("expected 0 below spacing, got %v", got)
	}
}

func TestEvenlyDistributedWidth(t *testing.T) {
	if got := EvenlyDistributedWidth(2, 208, 8, 100); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := EvenlyDistributedWidth(0, 208, 8, 100); got != 100 {
		t.Errorf("expected fallback, got %v", got)
	}
}

func TestLayoutActions_Mask(t *testing.T) {
	items := LayoutActions(LayoutInput{
		Count: 2, Side: Trailing, Style: StyleMask, VisibleWidth: 60,
		State: StateNone, Spacing: 8, ActionWidth: 100,
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Width != 100 || items[1].Width != 100 {
		t.Errorf("mask actions keep full width, got %v and %v", items[0].Width, items[1].Width)
	}
	if items[0].X != 0 || items[1].X != 108 {
		t.Errorf("unexpected positions %v, %v", items[0].X, items[1].X)
	}
	if !items[1].Edge || items[0].Edge {
		t.Error("expected the last trailing action to be the edge")
	}
}

func TestLayoutActions_EqualWidths(t *testing.T) {
	items := LayoutActions(LayoutInput{
		Count: 2, Side: Leading, Style: StyleEqualWidths, VisibleWidth: 60,
		Spacing: 8, ActionWidth: 100,
	})
	if items[0].Width != 26 || items[1].Width != 26 {
		t.Errorf("expected 26 each, got %v and %v", items[0].Width, items[1].Width)
	}
	if !items[0].Edge {
		t.Error("expected the first leading action to be the edge")
	}
	if got := StripWidth(StyleEqualWidths, 60, 8, items); got != 60 {
		t.Errorf("expected strip width 60, got %v", got)
	}
}

func TestLayoutActions_Cascade(t *testing.T) {
	items := LayoutActions(LayoutInput{
		Count: 3, Side: Leading, Style: StyleCascade, VisibleWidth: 340,
		Spacing: 8, ActionWidth: 100,
	})
	for i, item := range items {
		if item.ZIndex != 2-i {
			t.Errorf("item %d: expected z %d, got %d", i, 2-i, item.ZIndex)
		}
		if item.X != 340-item.Width {
			t.Errorf("item %d: expected to hug the inner edge, got x=%v", i, item.X)
		}
	}

	trailing := LayoutActions(LayoutInput{
		Count: 3, Side: Trailing, Style: StyleCascade, VisibleWidth: 340,
		Spacing: 8, ActionWidth: 100,
	})
	if trailing[2].ZIndex != 2 || trailing[0].X != 0 {
		t.Errorf("unexpected trailing cascade %+v", trailing)
	}
}

func TestLayoutActions_Triggering(t *testing.T) {
	items := LayoutActions(LayoutInput{
		Count: 3, Side: Trailing, Style: StyleMask, VisibleWidth: 250,
		State: Triggering, Spacing: 8, ActionWidth: 100,
	})
	for i, item := range items[:2] {
		if item.Visible || item.Width != 0 {
			t.Errorf("item %d: expected hidden, got %+v", i, item)
		}
	}
	edge := items[2]
	if !edge.Highlighted || edge.Width != 250 || !edge.Visible {
		t.Errorf("expected edge to fill the strip, got %+v", edge)
	}
	if edge.LabelAlignment != AlignCenter {
		t.Errorf("several actions keep the label centered, got %v", edge.LabelAlignment)
	}

	single := LayoutActions(LayoutInput{
		Count: 1, Side: Trailing, VisibleWidth: 250, State: Triggered, Spacing: 8, ActionWidth: 100,
	})
	if single[0].LabelAlignment != Trailing.edgeTriggerAlignment() {
		t.Errorf("expected a lone trigger label at the inner edge, got %v", single[0].LabelAlignment)
	}
}

func TestLayoutActions_Empty(t *testing.T) {
	if items := LayoutActions(LayoutInput{Count: 0, VisibleWidth: 100}); items != nil {
		t.Errorf("expected nil, got %v", items)
	}
}

func TestMaskRect(t *testing.T) {
	size := geometry.Size{Width: 390, Height: 60}
	rect := MaskRect(Trailing, size, 100, 20)
	if rect.Rect.Left != 290 || rect.Rect.Width() != 100 {
		t.Errorf("expected mask at the right edge, got %+v", rect.Rect)
	}
	leading := MaskRect(Leading, size, 100, 80)
	if leading.Rect.Left != 0 {
		t.Errorf("expected mask at the left edge, got %+v", leading.Rect)
	}
	if leading.Radius != 30 {
		t.Errorf("expected radius clamped to 30, got %v", leading.Radius)
	}
}
