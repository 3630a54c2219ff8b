package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
)

// Default row geometry, the size of a plain list row on a phone.
const (
	DefaultRowWidth  = 390
	DefaultRowHeight = 60
)

// FrameDuration is how far PumpFrame advances the clock.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned by PumpAndSettle when animations are still
// running at the timeout.
var ErrSettleTimeout = errors.New("testing: row did not settle before timeout")

// RowTester owns one row, a fake clock, and a recorder of everything the
// row reports.
type RowTester struct {
	clock   *FakeClock
	restore func()
	row     *swipe.Row
	rec     *Recorder

	// SampleInterval is the time between drag samples. Defaults to 8ms.
	SampleInterval time.Duration

	origin      geometry.Offset
	translation float64
	dragging    bool
}

// NewRowTester creates a row from cfg and installs a fake animation clock.
// Rows without a size get DefaultRowWidth x DefaultRowHeight. Call Cleanup
// when done, or use NewRowTesterWithT instead.
func NewRowTester(cfg swipe.RowConfig) *RowTester {
	clk := NewFakeClock()
	t := &RowTester{
		clock:          clk,
		restore:        clk.Install(),
		rec:            &Recorder{},
		SampleInterval: 8 * time.Millisecond,
		origin:         geometry.Offset{X: DefaultRowWidth / 2, Y: DefaultRowHeight / 2},
	}
	if cfg.ContentSize.IsEmpty() && cfg.Measurer == nil {
		cfg.ContentSize = geometry.Size{Width: DefaultRowWidth, Height: DefaultRowHeight}
	}
	t.rec.wire(&cfg)
	t.row = swipe.NewRow(cfg)
	return t
}

// NewRowTesterWithT creates a tester that auto-cleans up via t.Cleanup().
func NewRowTesterWithT(t *testing.T, cfg swipe.RowConfig) *RowTester {
	tester := NewRowTester(cfg)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the row and restores the animation clock.
func (t *RowTester) Cleanup() {
	t.row.Dispose()
	t.restore()
}

// Row returns the row under test.
func (t *RowTester) Row() *swipe.Row {
	return t.row
}

// Clock returns the fake clock for advancing time in tests.
func (t *RowTester) Clock() *FakeClock {
	return t.clock
}

// Recorder returns what the row has reported so far.
func (t *RowTester) Recorder() *Recorder {
	return t.rec
}

// Pump steps every active ticker once without advancing time.
func (t *RowTester) Pump() {
	animation.StepTickers()
}

// PumpFrame advances the clock by FrameDuration and steps the tickers.
func (t *RowTester) PumpFrame() {
	t.clock.Advance(FrameDuration)
	animation.StepTickers()
}

// PumpFor runs frames until d has elapsed.
func (t *RowTester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.PumpFrame()
	}
}

// PumpAndSettle runs frames until the row stops animating or the timeout
// is reached.
func (t *RowTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.row.IsAnimating() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// PumpAll steps frames until no ticker in the process is active. Useful
// when several rows share a group.
func PumpAll(clock *FakeClock, timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		animation.StepTickers()
		if !animation.HasActiveTickers() {
			return nil
		}
		clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
