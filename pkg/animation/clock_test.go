package animation

import (
	"testing"
	"time"
)

func TestManualClockDrivesTickers(t *testing.T) {
	clk := NewManualClock()
	restore := clk.Install()
	defer restore()

	var elapsed time.Duration
	ticker := NewTicker(func(d time.Duration) { elapsed = d })
	ticker.Start()
	defer ticker.Stop()

	clk.Advance(48 * time.Millisecond)
	StepTickers()
	if elapsed != 48*time.Millisecond {
		t.Errorf("elapsed = %v, want 48ms", elapsed)
	}
}

func TestManualClockInstallRestores(t *testing.T) {
	prev := SetClock(nil)
	defer SetClock(prev)

	clk := NewManualClock()
	restore := clk.Install()
	if clock != Clock(clk) {
		t.Fatalf("expected the manual clock installed, got %T", clock)
	}
	restore()
	if _, ok := clock.(realClock); !ok {
		t.Errorf("expected system time after restore, got %T", clock)
	}
}
