package swipe_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/swipe"
	swipetest "github.com/go-drift/swipe/pkg/testing"
)

const settleTimeout = 10 * time.Second

func TestRow_ExpandTwoTrailingActions(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Flag", nil), swipe.NewAction("Delete", nil)},
	})

	tester.Swipe(-250)
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}

	row := tester.Row()
	if row.State(swipe.Trailing) != swipe.Expanded {
		t.Fatalf("expected trailing expanded, got %v", row.State(swipe.Trailing))
	}
	if row.Offset() != -216 || row.PresentedOffset() != -216 {
		t.Errorf("expected offset -216, got %v (presented %v)", row.Offset(), row.PresentedOffset())
	}
	if side, ok := row.CurrentSide(); !ok || side != swipe.Trailing {
		t.Errorf("expected lock on trailing, got %v %v", side, ok)
	}
}

func TestRow_SwipeToTrigger(t *testing.T) {
	calls := 0
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", func() { calls++ }).WithSwipeToTrigger()},
	})
	row := tester.Row()

	tester.DragTo(-260, 13)
	if row.State(swipe.Trailing) != swipe.Triggering {
		t.Fatalf("expected triggering, got %v", row.State(swipe.Trailing))
	}
	if row.Offset() != -260 {
		t.Errorf("expected offset to track the drag, got %v", row.Offset())
	}
	if calls != 0 {
		t.Errorf("action must not run before release, ran %d times", calls)
	}
	layout := row.Layout(swipe.Trailing)
	if !layout[0].Highlighted {
		t.Error("expected the edge action to be highlighted while triggering")
	}

	tester.Release()
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}
	if row.State(swipe.Trailing) != swipe.Triggered {
		t.Fatalf("expected triggered, got %v", row.State(swipe.Trailing))
	}
	if calls != 1 {
		t.Errorf("expected the action to run once, ran %d times", calls)
	}
	if row.PresentedOffset() != -(swipetest.DefaultRowWidth + 8) {
		t.Errorf("expected the row to fly off to %v, got %v", -(swipetest.DefaultRowWidth + 8), row.PresentedOffset())
	}
	if got := len(tester.Recorder().Haptics); got != 2 {
		t.Errorf("expected haptics entering and leaving triggering, got %d", got)
	}
}

func TestRow_HapticsDisabled(t *testing.T) {
	opts := swipe.DefaultOptions()
	opts.EnableTriggerHaptics = false
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Options:  opts,
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil).WithSwipeToTrigger()},
	})

	tester.Swipe(-300)
	if got := len(tester.Recorder().Haptics); got != 0 {
		t.Errorf("expected no haptics, got %d", got)
	}
}

func TestRow_MinimumDragDistance(t *testing.T) {
	opts := swipe.DefaultOptions()
	opts.MinimumDragDistance = 20
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Options:  opts,
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})

	tester.DragTo(-15, 3)
	if tester.Row().IsDragging() || tester.Row().Offset() != 0 {
		t.Errorf("expected no movement under the minimum distance, got %v", tester.Row().Offset())
	}
	tester.DragTo(-40, 5)
	if !tester.Row().IsDragging() || tester.Row().Offset() != -40 {
		t.Errorf("expected the drag to start past the minimum, got %v", tester.Row().Offset())
	}
}

func TestRow_TouchDownDoesNotPickSide(t *testing.T) {
	opts := swipe.DefaultOptions()
	opts.MinimumDragDistance = 0
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Options:  opts,
		Leading:  []swipe.Action{swipe.NewAction("Read", nil)},
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})
	row := tester.Row()

	tester.DragTo(120, 6)
	if row.Offset() != 120 {
		t.Errorf("expected the drag to follow the pointer, got %v", row.Offset())
	}
	if side, ok := row.CurrentSide(); !ok || side != swipe.Leading {
		t.Errorf("expected lock on leading, got %v %v", side, ok)
	}
	tester.Release()
	if row.State(swipe.Leading) != swipe.Expanded {
		t.Errorf("expected leading expanded, got %v", row.State(swipe.Leading))
	}
}

func TestRow_SwipeDisabled(t *testing.T) {
	opts := swipe.DefaultOptions()
	opts.SwipeEnabled = false
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Options:  opts,
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})
	row := tester.Row()

	if transitions := tester.Swipe(-200); len(transitions) != 0 {
		t.Errorf("expected no transitions, got %v", transitions)
	}
	if row.Offset() != 0 {
		t.Errorf("expected no movement, got %v", row.Offset())
	}
	if _, err := row.SetState(swipe.Trailing, swipe.Expanded); err != nil {
		t.Fatal(err)
	}
	if row.State(swipe.Trailing) != swipe.Expanded {
		t.Error("programmatic state must still apply")
	}
}

func TestRow_SetStateErrors(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})
	row := tester.Row()

	if _, err := row.SetState(swipe.Trailing, swipe.Triggering); !stderrors.Is(err, swipe.ErrProgrammaticTriggering) {
		t.Errorf("expected ErrProgrammaticTriggering, got %v", err)
	}
	if _, err := row.SetState(swipe.Trailing, swipe.StateNone); !stderrors.Is(err, swipe.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
	if _, err := row.SetState(swipe.Side(5), swipe.Closed); !stderrors.Is(err, swipe.ErrInvalidSide) {
		t.Errorf("expected ErrInvalidSide, got %v", err)
	}
}

func TestRow_SetStateAnimates(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})
	row := tester.Row()

	if _, err := row.SetState(swipe.Trailing, swipe.Expanded); err != nil {
		t.Fatal(err)
	}
	if !row.IsAnimating() {
		t.Fatal("expected an expand animation")
	}
	if row.Offset() != -108 {
		t.Errorf("expected committed offset -108, got %v", row.Offset())
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}
	if row.PresentedOffset() != -108 {
		t.Errorf("expected presented offset -108, got %v", row.PresentedOffset())
	}

	transitions, err := row.SetState(swipe.Trailing, swipe.Closed)
	if err != nil || len(transitions) != 1 {
		t.Fatalf("expected one transition, got %v (%v)", transitions, err)
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}
	transitions, _ = row.SetState(swipe.Trailing, swipe.Closed)
	if transitions != nil || row.IsAnimating() {
		t.Errorf("expected closing a closed row to do nothing, got %v", transitions)
	}
}

func TestRow_Cancel(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})

	tester.DragTo(-150, 10)
	tester.Cancel()
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}
	if tester.Row().State(swipe.Trailing) != swipe.Expanded {
		t.Errorf("expected a cancel past ready-to-expand to resolve like a release, got %v", tester.Row().State(swipe.Trailing))
	}
}

func TestRow_TapAction(t *testing.T) {
	var tapped []string
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Leading: []swipe.Action{
			swipe.NewAction("Pin", func() { tapped = append(tapped, "pin") }),
			swipe.NewAction("Read", func() { tapped = append(tapped, "read") }),
		},
	})
	row := tester.Row()

	if err := row.TapAction(swipe.Leading, 1); err != nil {
		t.Fatal(err)
	}
	if len(tapped) != 1 || tapped[0] != "read" {
		t.Errorf("expected read to run, got %v", tapped)
	}
	if err := row.TapAction(swipe.Leading, 2); !stderrors.Is(err, swipe.ErrActionIndex) {
		t.Errorf("expected ErrActionIndex, got %v", err)
	}
}

func TestRow_ActionPanicIsRecovered(t *testing.T) {
	rec := swipetest.InstallErrorRecorder()
	t.Cleanup(rec.Uninstall)

	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", func() { panic("boom") }).WithSwipeToTrigger()},
	})

	tester.Swipe(-300)
	if tester.Row().State(swipe.Trailing) != swipe.Triggered {
		t.Errorf("expected triggered despite the panic, got %v", tester.Row().State(swipe.Trailing))
	}
	panics := rec.Panics()
	if len(panics) != 1 || panics[0].Op != "swipe.Action.OnTrigger" {
		t.Errorf("expected one recovered panic, got %v", panics)
	}
	errs := rec.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one callback error, got %v", errs)
	}
	if errs[0].Kind != errors.KindCallback || errs[0].Op != "swipe.Action.OnTrigger" {
		t.Errorf("unexpected callback error %+v", errs[0])
	}
	if errs[0].Row != tester.Row().ID().String() {
		t.Errorf("Row = %q, want %q", errs[0].Row, tester.Row().ID().String())
	}
}

func TestRow_ContextAndOpacity(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", nil)},
	})
	row := tester.Row()

	tester.DragTo(-75, 5)
	ctx := row.Context(swipe.Trailing)
	if ctx.NumberOfActions != 1 || !ctx.CurrentlyDragging {
		t.Errorf("unexpected context %+v", ctx)
	}
	if ctx.Opacity != 0.5 {
		t.Errorf("expected half opacity at 75, got %v", ctx.Opacity)
	}
	if row.Opacity(swipe.Leading) != 0 {
		t.Errorf("leading actions must stay hidden, got %v", row.Opacity(swipe.Leading))
	}
	if got := row.VisibleWidth(swipe.Trailing); got != 67 {
		t.Errorf("expected 67 visible, got %v", got)
	}
	if want := row.Options().ContentTriggerAnimation; ctx.HighlightAnimation != want {
		t.Errorf("HighlightAnimation = %v, want %v", ctx.HighlightAnimation, want)
	}
}

func TestRow_SetStateTriggeredMidDragSkipsAction(t *testing.T) {
	calls := 0
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{
		Trailing: []swipe.Action{swipe.NewAction("Delete", func() { calls++ }).WithSwipeToTrigger()},
	})
	row := tester.Row()

	tester.DragTo(-260, 13)
	if row.State(swipe.Trailing) != swipe.Triggering {
		t.Fatalf("expected triggering, got %v", row.State(swipe.Trailing))
	}
	transitions, err := row.SetState(swipe.Trailing, swipe.Triggered)
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 1 || transitions[0].From != swipe.Triggering || transitions[0].To != swipe.Triggered {
		t.Errorf("unexpected transitions %v", transitions)
	}
	if calls != 0 {
		t.Errorf("expected no action call for a programmatic trigger, got %d", calls)
	}
	if got := len(tester.Recorder().Haptics); got != 1 {
		t.Errorf("expected only the haptic from entering triggering, got %d", got)
	}
	if row.IsDragging() {
		t.Error("expected SetState to end the drag")
	}
	if err := tester.PumpAndSettle(settleTimeout); err != nil {
		t.Fatal(err)
	}
	if row.Offset() != -398 {
		t.Errorf("expected triggered offset -398, got %v", row.Offset())
	}
}

type fixedMeasurer geometry.Size

func (m fixedMeasurer) MeasureContent() geometry.Size { return geometry.Size(m) }

func TestNewRow_Defaults(t *testing.T) {
	row := swipe.NewRow(swipe.RowConfig{Measurer: fixedMeasurer{Width: 320, Height: 44}})
	t.Cleanup(row.Dispose)

	if row.ID() == uuid.Nil {
		t.Error("expected a generated ID")
	}
	if row.Options() != swipe.DefaultOptions() {
		t.Error("expected zero options to mean the defaults")
	}
	if row.ContentSize().Width != 320 {
		t.Errorf("expected measured width 320, got %v", row.ContentSize().Width)
	}
	if th := row.Thresholds(swipe.Trailing); th.Triggered != -328 {
		t.Errorf("expected triggered at -328, got %v", th.Triggered)
	}
}

func TestRow_SetActionsUpdatesThresholds(t *testing.T) {
	tester := swipetest.NewRowTesterWithT(t, swipe.RowConfig{})
	row := tester.Row()

	if err := row.SetActions(swipe.Trailing, []swipe.Action{swipe.NewAction("A", nil), swipe.NewAction("B", nil)}); err != nil {
		t.Fatal(err)
	}
	if row.NumberOfActions(swipe.Trailing) != 2 {
		t.Errorf("expected 2 actions, got %d", row.NumberOfActions(swipe.Trailing))
	}
	if th := row.Thresholds(swipe.Trailing); th.Expanded != -216 {
		t.Errorf("expected expanded at -216, got %v", th.Expanded)
	}
	if err := row.SetActions(swipe.Side(3), nil); !stderrors.Is(err, swipe.ErrInvalidSide) {
		t.Errorf("expected ErrInvalidSide, got %v", err)
	}
}
