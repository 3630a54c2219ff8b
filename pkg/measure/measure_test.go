package measure

import (
	"testing"

	"github.com/go-drift/swipe/pkg/geometry"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		text          string
		width, height float64
	}{
		{"", 0, 13},
		{"Hello", 35, 13},
		{"ab\nabcd", 28, 26},
	}
	for _, tt := range tests {
		w, h := MeasureText(nil, tt.text)
		if w != tt.width || h != tt.height {
			t.Errorf("MeasureText(%q) = %vx%v, want %vx%v", tt.text, w, h, tt.width, tt.height)
		}
	}
}

func TestTextMeasurer(t *testing.T) {
	m := TextMeasurer{Text: "Hello", HorizontalPadding: 16, VerticalPadding: 10}
	if got := m.MeasureContent(); got != (geometry.Size{Width: 67, Height: 33}) {
		t.Errorf("expected 67x33, got %v", got)
	}
	m.MinHeight = 44
	if got := m.MeasureContent(); got.Height != 44 {
		t.Errorf("expected the minimum height, got %v", got.Height)
	}
}

func TestLabelWidth(t *testing.T) {
	if got := LabelWidth(nil, "Delete", 16); got != 74 {
		t.Errorf("expected 74, got %v", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate(nil, "Delete", 100); got != "Delete" {
		t.Errorf("expected title unchanged, got %q", got)
	}
	got := Truncate(nil, "Delete", 30)
	if w, _ := MeasureText(nil, got); w > 30 {
		t.Errorf("truncated %q is %v wide", got, w)
	}
	if got == "Delete" || got == "" {
		t.Errorf("expected a shortened title, got %q", got)
	}
	if got := Truncate(nil, "Delete", 1); got != "" {
		t.Errorf("expected nothing to fit, got %q", got)
	}
}
