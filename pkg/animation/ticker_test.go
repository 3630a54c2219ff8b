package animation

import (
	"testing"
	"time"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestTickerStepsWithClock(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	defer SetClock(prev)

	var elapsed []time.Duration
	ticker := NewTicker(func(d time.Duration) {
		elapsed = append(elapsed, d)
	})
	ticker.Start()
	defer ticker.Stop()

	clk.now = clk.now.Add(16 * time.Millisecond)
	StepTickers()
	clk.now = clk.now.Add(16 * time.Millisecond)
	StepTickers()

	if len(elapsed) != 2 {
		t.Fatalf("callback ran %d times, want 2", len(elapsed))
	}
	if elapsed[1] != 32*time.Millisecond {
		t.Errorf("elapsed = %v, want 32ms", elapsed[1])
	}
	if got := ticker.Elapsed(); got != 32*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 32ms", got)
	}
}

func TestTickerStopRemovesFromRegistry(t *testing.T) {
	calls := 0
	ticker := NewTicker(func(time.Duration) { calls++ })
	ticker.Start()
	ticker.Start()
	if !HasActiveTickers() {
		t.Fatal("expected an active ticker")
	}
	ticker.Stop()
	StepTickers()
	if calls != 0 {
		t.Errorf("stopped ticker ran %d times", calls)
	}
	if ticker.IsActive() {
		t.Error("ticker should be inactive after Stop")
	}
	if ticker.Elapsed() != 0 {
		t.Error("inactive ticker should report zero elapsed")
	}
}

func TestSetClockNilRestoresSystemTime(t *testing.T) {
	prev := SetClock(nil)
	defer SetClock(prev)
	if _, ok := clock.(realClock); !ok {
		t.Errorf("SetClock(nil) installed %T, want realClock", clock)
	}
}
