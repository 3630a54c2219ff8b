// Package measure sizes row content and action labels with a font face, for
// hosts and tools that have text rather than a rendered view to measure.
package measure

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/swipe/pkg/geometry"
)

// DefaultFace is used when no face is given: a 7x13 fixed-width bitmap font.
var DefaultFace font.Face = basicfont.Face7x13

// TextMeasurer measures a block of text laid out one line per newline. It
// implements swipe.ContentMeasurer.
type TextMeasurer struct {
	Text string
	Face font.Face

	HorizontalPadding float64
	VerticalPadding   float64

	// MinHeight is the smallest height reported, for rows with a fixed
	// minimum touch target.
	MinHeight float64
}

// MeasureContent returns the padded size of the text.
func (m TextMeasurer) MeasureContent() geometry.Size {
	width, height := MeasureText(m.Face, m.Text)
	size := geometry.Size{
		Width:  width + 2*m.HorizontalPadding,
		Height: height + 2*m.VerticalPadding,
	}
	size.Height = math.Max(size.Height, m.MinHeight)
	return size
}

// MeasureText returns the width of the widest line and the total line
// height of text. A nil face means DefaultFace.
func MeasureText(face font.Face, text string) (width, height float64) {
	if face == nil {
		face = DefaultFace
	}
	lineHeight := toFloat(face.Metrics().Height)
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		width = math.Max(width, toFloat(font.MeasureString(face, line)))
	}
	return width, lineHeight * float64(len(lines))
}

// LabelWidth is the width an action needs to show title at its intrinsic
// size with padding on both sides.
func LabelWidth(face font.Face, title string, padding float64) float64 {
	width, _ := MeasureText(face, title)
	return width + 2*padding
}

// Truncate shortens title with a trailing ellipsis until it fits within
// maxWidth. It returns the title unchanged when it already fits.
func Truncate(face font.Face, title string, maxWidth float64) string {
	if face == nil {
		face = DefaultFace
	}
	if toFloat(font.MeasureString(face, title)) <= maxWidth {
		return title
	}
	const ellipsis = "…"
	runes := []rune(title)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if toFloat(font.MeasureString(face, candidate)) <= maxWidth {
			return candidate
		}
	}
	return ""
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
