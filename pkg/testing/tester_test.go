package testing

import (
	"testing"
	"time"

	"github.com/go-drift/swipe/pkg/swipe"
)

func trailingDelete() []swipe.Action {
	return []swipe.Action{swipe.NewAction("Delete", nil).WithSwipeToTrigger()}
}

func TestRowTester_DefaultSize(t *testing.T) {
	tester := NewRowTesterWithT(t, swipe.RowConfig{Trailing: trailingDelete()})

	size := tester.Row().ContentSize()
	if size.Width != DefaultRowWidth || size.Height != DefaultRowHeight {
		t.Errorf("expected %vx%v, got %vx%v", DefaultRowWidth, DefaultRowHeight, size.Width, size.Height)
	}
}

func TestRowTester_DragFollowsPointer(t *testing.T) {
	tester := NewRowTesterWithT(t, swipe.RowConfig{Trailing: trailingDelete()})

	tester.DragTo(-60, 6)
	if got := tester.Row().Offset(); got != -60 {
		t.Errorf("expected offset -60, got %v", got)
	}
	if !tester.Row().IsDragging() {
		t.Error("expected row to be dragging")
	}
	last, ok := tester.Recorder().LastFrame()
	if !ok || last != -60 {
		t.Errorf("expected last frame -60, got %v (%v)", last, ok)
	}
}

func TestRowTester_SwipeExpandsAndSettles(t *testing.T) {
	tester := NewRowTesterWithT(t, swipe.RowConfig{Trailing: trailingDelete()})

	tester.Swipe(-120)
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatal(err)
	}

	row := tester.Row()
	if row.State(swipe.Trailing) != swipe.Expanded {
		t.Fatalf("expected trailing expanded, got %v", row.State(swipe.Trailing))
	}
	if row.PresentedOffset() != -108 {
		t.Errorf("expected presented offset -108, got %v", row.PresentedOffset())
	}
	if row.IsAnimating() {
		t.Error("expected animation to have finished")
	}
}

func TestRowTester_Cancel(t *testing.T) {
	tester := NewRowTesterWithT(t, swipe.RowConfig{Trailing: trailingDelete()})

	tester.DragTo(-20, 4)
	tester.Cancel()
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatal(err)
	}
	if got := tester.Row().PresentedOffset(); got != 0 {
		t.Errorf("expected row to settle closed, got %v", got)
	}
	if tester.Row().IsDragging() {
		t.Error("expected drag to have ended")
	}
}

func TestRowTester_PumpAndSettleTimeout(t *testing.T) {
	tester := NewRowTesterWithT(t, swipe.RowConfig{Trailing: trailingDelete()})

	tester.Swipe(-120)
	if err := tester.PumpAndSettle(FrameDuration); err != ErrSettleTimeout {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestErrorRecorder(t *testing.T) {
	rec := InstallErrorRecorder()
	t.Cleanup(rec.Uninstall)

	opts := swipe.DefaultOptions()
	opts.RubberBandPower = 3
	NewRowTesterWithT(t, swipe.RowConfig{Options: opts})

	if len(rec.Errors()) != 1 {
		t.Fatalf("expected 1 config error, got %d", len(rec.Errors()))
	}
	if len(rec.Panics()) != 0 {
		t.Errorf("expected no panics, got %d", len(rec.Panics()))
	}
}
