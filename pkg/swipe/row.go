package swipe

import (
	stderrors "errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/geometry"
)

var (
	// ErrProgrammaticTriggering is returned by SetState for Triggering,
	// which only a drag can reach.
	ErrProgrammaticTriggering = stderrors.New("swipe: triggering can only be reached by dragging")
	// ErrInvalidState is returned by SetState for states that cannot be set.
	ErrInvalidState = stderrors.New("swipe: state cannot be set programmatically")
	// ErrInvalidSide is returned for a Side other than Leading or Trailing.
	ErrInvalidSide = stderrors.New("swipe: invalid side")
	// ErrActionIndex is returned by TapAction for an index out of range.
	ErrActionIndex = stderrors.New("swipe: action index out of range")
)

// ContentMeasurer reports the rendered size of a row's content.
type ContentMeasurer interface {
	MeasureContent() geometry.Size
}

// RowConfig configures a new Row.
type RowConfig struct {
	// ID identifies the row in its group. A random ID is used when unset.
	ID RowID

	// Options defaults to DefaultOptions when left zero.
	Options Options

	Leading  []Action
	Trailing []Action

	// Group, when set, closes this row whenever another member opens.
	Group *Group

	// ContentSize is the measured size of the content. When empty, Measurer
	// is asked once. Hosts update it later with SetContentSize.
	ContentSize geometry.Size
	Measurer    ContentMeasurer

	// OnHaptic is called each time a drag moves a side into or out of
	// Triggering, when Options.EnableTriggerHaptics is set.
	OnHaptic func(Side)

	// OnTransition observes every state change.
	OnTransition func(Transition)

	// OnFrame is called whenever the presented offset changes.
	OnFrame func(offset float64)
}

// Row is one swipeable row: the session state of the content offset, both
// sides' states and the animation toward the committed offset.
type Row struct {
	id      RowID
	m       machine
	actions [2][]Action
	size    geometry.Size

	velocity GestureVelocity
	last     DragSample
	hasLast  bool
	dragging bool

	driver offsetDriver
	group  *Group

	onHaptic     func(Side)
	onTransition func(Transition)
}

// NewRow creates a row. Malformed options are reported through the errors
// package and clamped.
func NewRow(cfg RowConfig) *Row {
	id := cfg.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	opts := cfg.Options
	if opts == (Options{}) {
		opts = DefaultOptions()
	}

	r := &Row{
		id:           id,
		group:        cfg.Group,
		onHaptic:     cfg.OnHaptic,
		onTransition: cfg.OnTransition,
	}
	r.driver.onFrame = cfg.OnFrame
	r.applyOptions("swipe.NewRow", opts)
	r.setActions(Leading, cfg.Leading)
	r.setActions(Trailing, cfg.Trailing)

	size := cfg.ContentSize
	if size.Width <= 0 && cfg.Measurer != nil {
		size = cfg.Measurer.MeasureContent()
	}
	r.SetContentSize(size)

	if r.group != nil {
		r.group.join(r)
	}
	return r
}

// ID returns the row's identity.
func (r *Row) ID() RowID { return r.id }

// Options returns the sanitized options in effect.
func (r *Row) Options() Options { return r.m.opts }

// SetOptions replaces the options. Thresholds follow immediately.
func (r *Row) SetOptions(opts Options) {
	r.applyOptions("swipe.Row.SetOptions", opts)
}

func (r *Row) applyOptions(op string, opts Options) {
	if err := opts.Validate(); err != nil {
		errors.Report(&errors.SwipeError{
			Op:   op,
			Kind: errors.KindConfig,
			Row:  r.id.String(),
			Err:  err,
		})
	}
	r.m.opts = opts.Sanitized()
}

// SetActions replaces a side's actions.
func (r *Row) SetActions(side Side, actions []Action) error {
	if !side.valid() {
		return ErrInvalidSide
	}
	r.setActions(side, actions)
	return nil
}

func (r *Row) setActions(side Side, actions []Action) {
	r.actions[side] = append([]Action(nil), actions...)
	r.m.counts[side] = len(actions)
	r.m.edgeTrigger[side] = false
	if i := edgeIndex(side, len(actions)); i >= 0 {
		r.m.edgeTrigger[side] = actions[i].AllowSwipeToTrigger
	}
}

// Actions returns a copy of a side's actions.
func (r *Row) Actions(side Side) []Action {
	if !side.valid() {
		return nil
	}
	return append([]Action(nil), r.actions[side]...)
}

// NumberOfActions returns how many actions a side has.
func (r *Row) NumberOfActions(side Side) int {
	if !side.valid() {
		return 0
	}
	return r.m.counts[side]
}

// SetContentSize records the measured size of the row's content.
func (r *Row) SetContentSize(size geometry.Size) {
	r.size = size
	r.m.rowWidth = size.Width
}

// ContentSize returns the last measured content size.
func (r *Row) ContentSize() geometry.Size { return r.size }

// Offset returns the committed content offset: the current drag delta plus
// the offset saved by earlier sessions.
func (r *Row) Offset() float64 { return r.m.offset() }

// PresentedOffset returns the offset to draw this frame. It trails Offset
// while a settle animation runs.
func (r *Row) PresentedOffset() float64 { return r.driver.presented }

// IsAnimating reports whether a settle animation is running.
func (r *Row) IsAnimating() bool { return r.driver.isAnimating() }

// IsDragging reports whether a drag session is in progress.
func (r *Row) IsDragging() bool { return r.dragging }

// State returns a side's state.
func (r *Row) State(side Side) State {
	if !side.valid() {
		return StateNone
	}
	return r.m.states[side]
}

// CurrentSide returns the side the row is locked to, if any.
func (r *Row) CurrentSide() (Side, bool) {
	return r.m.lockedSide, r.m.locked
}

// Thresholds returns a side's thresholds for the current counts, options
// and content width.
func (r *Row) Thresholds(side Side) Thresholds {
	if !side.valid() {
		return Thresholds{}
	}
	return r.m.thresholds(side)
}

func (r *Row) draggedLength(side Side) float64 {
	return r.driver.presented * side.Sign()
}

// Opacity returns the reveal opacity of a side's actions.
func (r *Row) Opacity(side Side) float64 {
	return Opacity(r.draggedLength(side), r.m.opts.ActionsVisibleStartPoint, r.m.opts.ActionsVisibleEndPoint)
}

// VisibleWidth returns how much of a side's strip is uncovered.
func (r *Row) VisibleWidth(side Side) float64 {
	return VisibleWidth(r.draggedLength(side), r.m.opts.Spacing)
}

// Layout returns the frames of a side's actions for the presented offset.
func (r *Row) Layout(side Side) []ActionLayout {
	if !side.valid() {
		return nil
	}
	return LayoutActions(LayoutInput{
		Count:        r.m.counts[side],
		Side:         side,
		Style:        r.m.opts.ActionsStyle,
		VisibleWidth: r.VisibleWidth(side),
		State:        r.m.states[side],
		Spacing:      r.m.opts.Spacing,
		ActionWidth:  r.m.opts.ActionWidth,
	})
}

// MaskRect returns the rounded clip that uncovers a side's actions.
func (r *Row) MaskRect(side Side) geometry.RRect {
	return MaskRect(side, r.size, r.VisibleWidth(side), r.m.opts.ActionsMaskCornerRadius)
}

// Context returns what a side's actions observe of the row.
func (r *Row) Context(side Side) SideContext {
	return SideContext{
		Side:               side,
		State:              r.State(side),
		NumberOfActions:    r.NumberOfActions(side),
		Opacity:            r.Opacity(side),
		CurrentlyDragging:  r.dragging,
		HighlightAnimation: r.m.opts.ContentTriggerAnimation,
	}
}

// OnDragChanged feeds one drag sample. Samples must arrive in order.
func (r *Row) OnDragChanged(sample DragSample) []Transition {
	if !r.m.opts.SwipeEnabled {
		return nil
	}
	r.velocity.Update(sample)
	r.last = sample
	r.hasLast = true

	if !r.dragging {
		if sample.Translation.Distance() < r.m.opts.MinimumDragDistance {
			return nil
		}
		r.dragging = true
		r.m.begin(sample.Translation.X)
		if r.group != nil {
			r.group.Select(r.id)
		}
	}

	transitions := r.m.change(sample.Translation.X)
	r.driver.follow(r.m.offset())
	r.dispatch(transitions, true)
	return transitions
}

// OnDragEnded resolves the drag into closed, expanded or triggered.
func (r *Row) OnDragEnded(sample DragSample) []Transition {
	if !r.dragging {
		r.resetSession()
		return nil
	}
	velocity := r.releaseVelocity()
	r.resetSession()
	return r.finish(sample, velocity)
}

// OnDragCancelled ends an interrupted drag as if it had been released at
// the last sample, so the row always settles.
func (r *Row) OnDragCancelled() []Transition {
	if !r.dragging || !r.hasLast {
		r.resetSession()
		return nil
	}
	sample := r.last
	velocity := r.releaseVelocity()
	r.resetSession()
	return r.finish(sample, velocity)
}

func (r *Row) finish(sample DragSample, velocity float64) []Transition {
	transitions, req := r.m.end(sample.Translation.X, sample.PredictedEndTranslation.X, velocity)
	r.settle(req)
	r.dispatch(transitions, true)
	return transitions
}

// releaseVelocity is the drag velocity relative to the current drag delta.
func (r *Row) releaseVelocity() float64 {
	if r.m.currentOffset == 0 {
		return 0
	}
	v := r.velocity.Velocity().X / r.m.currentOffset
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (r *Row) resetSession() {
	r.dragging = false
	r.hasLast = false
	r.last = DragSample{}
	r.velocity.Reset()
}

// SetState moves a side to Closed, Expanded or Triggered with an animation.
// Setting the state the row already rests in does nothing.
func (r *Row) SetState(side Side, state State) ([]Transition, error) {
	if !side.valid() {
		return nil, ErrInvalidSide
	}
	switch state {
	case Closed, Expanded, Triggered:
	case Triggering:
		return nil, ErrProgrammaticTriggering
	default:
		return nil, ErrInvalidState
	}
	if r.dragging {
		r.resetSession()
	}

	transitions, req, animate := r.m.set(side, state)
	if animate {
		r.settle(req)
	}
	if state.IsOpen() && r.group != nil {
		r.group.Select(r.id)
	}
	r.dispatch(transitions, false)
	return transitions, nil
}

// TapAction runs an action's callback as a tap would.
func (r *Row) TapAction(side Side, index int) error {
	if !side.valid() {
		return ErrInvalidSide
	}
	if index < 0 || index >= len(r.actions[side]) {
		return ErrActionIndex
	}
	r.call("swipe.Action.OnTrigger", r.actions[side][index].OnTrigger)
	return nil
}

// Close closes the row from whichever side is open.
func (r *Row) Close() []Transition {
	if r.m.settled() && !r.dragging {
		return nil
	}
	r.resetSession()
	transitions, req := r.m.forceClose()
	r.settle(req)
	r.dispatch(transitions, false)
	return transitions
}

// Dispose stops animations and leaves the group.
func (r *Row) Dispose() {
	r.driver.stop()
	if r.group != nil {
		r.group.leave(r)
		r.group = nil
	}
}

func (r *Row) selectionChanged(selection RowID) {
	if selection == r.id {
		return
	}
	r.Close()
}

func (r *Row) settle(req settleRequest) {
	r.driver.animateTo(req.target, req.velocity, req.kind.spring(r.m.opts))
}

// dispatch notifies collaborators of transitions. Haptics and the edge
// action only answer transitions a drag produced.
func (r *Row) dispatch(transitions []Transition, fromDrag bool) {
	closed := false
	for _, t := range transitions {
		if r.onTransition != nil {
			r.call("swipe.Row.OnTransition", func() { r.onTransition(t) })
		}
		if fromDrag && r.m.opts.EnableTriggerHaptics && r.onHaptic != nil &&
			(t.From == Triggering || t.To == Triggering) {
			r.call("swipe.Row.OnHaptic", func() { r.onHaptic(t.Side) })
		}
		if fromDrag && t.From == Triggering && t.To == Triggered {
			if i := edgeIndex(t.Side, len(r.actions[t.Side])); i >= 0 {
				r.call("swipe.Action.OnTrigger", r.actions[t.Side][i].OnTrigger)
			}
		}
		if t.To == Closed {
			closed = true
		}
	}
	if closed && r.group != nil && !r.m.states[Leading].IsOpen() && !r.m.states[Trailing].IsOpen() {
		r.group.Release(r.id)
	}
}

// call runs a collaborator callback, reporting a panic instead of letting
// it unwind through the state machine.
func (r *Row) call(op string, fn func()) {
	if fn == nil {
		return
	}
	defer errors.RecoverWithCallback(op, func(v any) {
		errors.Report(&errors.SwipeError{
			Op:   op,
			Kind: errors.KindCallback,
			Row:  r.id.String(),
			Err:  fmt.Errorf("callback panicked: %v", v),
		})
	})
	fn()
}
