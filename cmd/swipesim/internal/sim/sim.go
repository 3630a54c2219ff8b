// Package sim replays a trace through a group of rows on a manual clock.
package sim

import (
	"fmt"
	"time"

	"github.com/go-drift/swipe/cmd/swipesim/internal/trace"
	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/measure"
	"github.com/go-drift/swipe/pkg/swipe"
)

// Settle is the pseudo event reported for every row once the timeline ends.
const Settle trace.EventType = "settle"

// Group is the pseudo event reported for a row changed by another row's
// event, such as being closed when the other row opened.
const Group trace.EventType = "group"

// Default row size when a row has neither a width nor content.
const (
	DefaultWidth  = 390
	DefaultHeight = 60
)

// Config controls a replay.
type Config struct {
	Options swipe.Options
	// FPS is the frame rate tickers are stepped at. Defaults to 60.
	FPS int
	// SettleTimeout bounds the final settle. Defaults to 10s.
	SettleTimeout time.Duration
}

// Result is the state of one row after one event.
type Result struct {
	Step  int
	At    time.Duration
	Row   string
	Event trace.EventType

	Offset    float64
	Presented float64
	Leading   swipe.State
	Trailing  swipe.State

	Transitions []swipe.Transition
	Haptics     int
	Triggered   []string
	Err         error
}

type rowState struct {
	name        string
	row         *swipe.Row
	transitions []swipe.Transition
	haptics     int
	triggered   []string
}

func (r *rowState) changed() bool {
	return len(r.transitions) > 0 || r.haptics > 0 || len(r.triggered) > 0
}

func (r *rowState) reset() {
	r.transitions = nil
	r.haptics = 0
	r.triggered = nil
}

// Simulator owns the rows of one replay.
type Simulator struct {
	cfg   Config
	clock *animation.ManualClock
	start time.Time
	group *swipe.Group
	rows  map[string]*rowState
	order []*rowState
}

// New builds a row per trace row, all in one group, on clock.
func New(tr *trace.Trace, clock *animation.ManualClock, cfg Config) *Simulator {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = 10 * time.Second
	}
	s := &Simulator{
		cfg:   cfg,
		clock: clock,
		start: clock.Now(),
		group: swipe.NewGroup(),
		rows:  make(map[string]*rowState, len(tr.Rows)),
	}
	for _, spec := range tr.Rows {
		state := &rowState{name: spec.Name}
		rc := swipe.RowConfig{
			Options:      cfg.Options,
			Leading:      state.actions(spec.Leading),
			Trailing:     state.actions(spec.Trailing),
			Group:        s.group,
			OnHaptic:     func(swipe.Side) { state.haptics++ },
			OnTransition: func(t swipe.Transition) { state.transitions = append(state.transitions, t) },
		}
		switch {
		case spec.Width > 0:
			rc.ContentSize = geometry.Size{Width: spec.Width, Height: orDefault(spec.Height, DefaultHeight)}
		case spec.Content != "":
			rc.Measurer = measure.TextMeasurer{
				Text:              spec.Content,
				HorizontalPadding: 16,
				VerticalPadding:   12,
				MinHeight:         orDefault(spec.Height, 44),
			}
		default:
			rc.ContentSize = geometry.Size{Width: DefaultWidth, Height: orDefault(spec.Height, DefaultHeight)}
		}
		state.row = swipe.NewRow(rc)
		s.rows[spec.Name] = state
		s.order = append(s.order, state)
	}
	return s
}

func (r *rowState) actions(specs []trace.ActionSpec) []swipe.Action {
	actions := make([]swipe.Action, len(specs))
	for i, spec := range specs {
		title := spec.Title
		a := swipe.NewAction(title, func() { r.triggered = append(r.triggered, title) })
		a.AllowSwipeToTrigger = spec.SwipeToTrigger
		a.ChangeLabelVisibilityOnly = spec.LabelOnly
		actions[i] = a
	}
	return actions
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Row returns the named row.
func (s *Simulator) Row(name string) (*swipe.Row, bool) {
	state, ok := s.rows[name]
	if !ok {
		return nil, false
	}
	return state.row, true
}

// Advance moves the clock forward by d, stepping tickers once per frame.
func (s *Simulator) Advance(d time.Duration) {
	frame := time.Second / time.Duration(s.cfg.FPS)
	for d > 0 {
		step := min(frame, d)
		s.clock.Advance(step)
		animation.StepTickers()
		d -= step
	}
}

// Apply runs one event and returns the results it produced: one for the
// event's row, then one for each other row it changed.
func (s *Simulator) Apply(step int, ev trace.Event) []Result {
	for _, r := range s.order {
		r.reset()
	}
	s.Advance(ev.Interval())

	target, ok := s.rows[ev.Row]
	var out []Result
	switch {
	case ok:
		err := s.apply(target.row, ev)
		res := s.result(step, target, ev.Type)
		res.Err = err
		out = append(out, res)
	case ev.Type != trace.Wait:
		out = append(out, Result{Step: step, At: s.elapsed(), Row: ev.Row, Event: ev.Type, Err: fmt.Errorf("unknown row %q", ev.Row)})
	}
	for _, r := range s.order {
		if r != target && r.changed() {
			out = append(out, s.result(step, r, Group))
		}
	}
	if len(out) == 0 {
		out = append(out, Result{Step: step, At: s.elapsed(), Event: ev.Type})
	}
	return out
}

func (s *Simulator) apply(row *swipe.Row, ev trace.Event) error {
	sample := swipe.DragSample{
		Translation:             geometry.Offset{X: ev.X},
		Time:                    s.clock.Now(),
		PredictedEndTranslation: geometry.Offset{X: ev.PredictedX()},
	}
	switch ev.Type {
	case trace.Change:
		row.OnDragChanged(sample)
	case trace.End:
		row.OnDragEnded(sample)
	case trace.Cancel:
		row.OnDragCancelled()
	case trace.Set:
		side, err := swipe.ParseSide(ev.Side)
		if err != nil {
			return err
		}
		state, err := swipe.ParseState(ev.State)
		if err != nil {
			return err
		}
		_, err = row.SetState(side, state)
		return err
	case trace.Tap:
		side, err := swipe.ParseSide(ev.Side)
		if err != nil {
			return err
		}
		return row.TapAction(side, ev.Index)
	}
	return nil
}

func (s *Simulator) elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}

func (s *Simulator) result(step int, r *rowState, event trace.EventType) Result {
	return Result{
		Step:        step,
		At:          s.elapsed(),
		Row:         r.name,
		Event:       event,
		Offset:      r.row.Offset(),
		Presented:   r.row.PresentedOffset(),
		Leading:     r.row.State(swipe.Leading),
		Trailing:    r.row.State(swipe.Trailing),
		Transitions: r.transitions,
		Haptics:     r.haptics,
		Triggered:   r.triggered,
	}
}

// Settle runs frames until no animation is active or the timeout passes,
// then reports every row. The bool is false on timeout.
func (s *Simulator) Settle(step int) ([]Result, bool) {
	for _, r := range s.order {
		r.reset()
	}
	settled := false
	frame := time.Second / time.Duration(s.cfg.FPS)
	for waited := time.Duration(0); waited <= s.cfg.SettleTimeout; waited += frame {
		if !animation.HasActiveTickers() {
			settled = true
			break
		}
		s.Advance(frame)
	}
	out := make([]Result, 0, len(s.order))
	for _, r := range s.order {
		out = append(out, s.result(step, r, Settle))
	}
	return out, settled
}

// Dispose stops every row.
func (s *Simulator) Dispose() {
	for _, r := range s.order {
		r.row.Dispose()
	}
}

// Replay runs the whole trace on a fresh manual clock installed as the
// animation clock for the duration of the call.
func Replay(tr *trace.Trace, cfg Config) ([]Result, error) {
	clock := animation.NewManualClock()
	restore := clock.Install()
	defer restore()

	s := New(tr, clock, cfg)
	defer s.Dispose()

	var results []Result
	for i, ev := range tr.Events {
		results = append(results, s.Apply(i+1, ev)...)
	}
	final, ok := s.Settle(len(tr.Events) + 1)
	results = append(results, final...)
	if !ok {
		return results, fmt.Errorf("rows still animating after %v", s.cfg.SettleTimeout)
	}
	return results, nil
}
