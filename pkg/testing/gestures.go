package testing

import (
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

func (t *RowTester) sample(translation, predicted float64) swipe.DragSample {
	delta := geometry.Offset{X: translation}
	return swipe.DragSample{
		Position:                t.origin.Add(delta),
		Translation:             delta,
		Time:                    t.clock.Now(),
		PredictedEndTranslation: geometry.Offset{X: predicted},
	}
}

// DragTo moves the pointer horizontally to translation (measured from where
// the drag began) in steps evenly spaced samples. A drag that is not yet in
// progress starts with a sample at zero translation, as a platform
// recognizer reports the touch-down.
func (t *RowTester) DragTo(translation float64, steps int) []swipe.Transition {
	if steps < 1 {
		steps = 1
	}
	var out []swipe.Transition
	if !t.dragging {
		t.dragging = true
		t.translation = 0
		out = append(out, t.row.OnDragChanged(t.sample(0, 0))...)
	}
	from := t.translation
	for i := 1; i <= steps; i++ {
		t.clock.Advance(t.SampleInterval)
		x := from + (translation-from)*float64(i)/float64(steps)
		t.translation = x
		out = append(out, t.row.OnDragChanged(t.sample(x, x))...)
	}
	return out
}

// DragBy moves the pointer by dx from its current translation.
func (t *RowTester) DragBy(dx float64, steps int) []swipe.Transition {
	return t.DragTo(t.translation+dx, steps)
}

// Release lifts the pointer where it is, predicting no further travel.
func (t *RowTester) Release() []swipe.Transition {
	return t.Fling(t.translation)
}

// Fling lifts the pointer with the platform predicting the drag would have
// come to rest at predicted.
func (t *RowTester) Fling(predicted float64) []swipe.Transition {
	t.clock.Advance(t.SampleInterval)
	s := t.sample(t.translation, predicted)
	t.dragging = false
	t.translation = 0
	return t.row.OnDragEnded(s)
}

// Cancel interrupts the drag as the platform would on a system gesture.
func (t *RowTester) Cancel() []swipe.Transition {
	t.dragging = false
	t.translation = 0
	return t.row.OnDragCancelled()
}

// Swipe drags to translation in ten samples and releases.
func (t *RowTester) Swipe(translation float64) []swipe.Transition {
	out := t.DragTo(translation, 10)
	return append(out, t.Release()...)
}
