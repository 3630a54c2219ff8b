package swipe

import "fmt"

// Side is either the leading or the trailing edge of a row.
type Side int

const (
	// Leading actions are revealed by dragging the content toward the
	// trailing edge. The offset is positive.
	Leading Side = iota
	// Trailing actions are revealed by dragging toward the leading edge.
	// The offset is negative.
	Trailing
)

// Sign returns +1 for Leading and -1 for Trailing.
func (s Side) Sign() float64 {
	if s == Trailing {
		return -1
	}
	return 1
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Trailing {
		return Leading
	}
	return Trailing
}

// Alignment is the edge the side's actions hug.
func (s Side) Alignment() Alignment {
	if s == Trailing {
		return AlignTrailing
	}
	return AlignLeading
}

// edgeTriggerAlignment is where a lone edge action's label sits while it
// is being triggered: the inner edge, next to the content.
func (s Side) edgeTriggerAlignment() Alignment {
	if s == Trailing {
		return AlignLeading
	}
	return AlignTrailing
}

func (s Side) valid() bool {
	return s == Leading || s == Trailing
}

func (s Side) String() string {
	switch s {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// sideOf returns the side an offset reveals. Zero maps to Trailing.
func sideOf(offset float64) Side {
	if offset > 0 {
		return Leading
	}
	return Trailing
}

// State is the discrete state of one side of a row.
type State int

const (
	// StateNone means the side is in no named state: mid-drag, rubber-banding,
	// or a row that has never settled.
	StateNone State = iota
	// Closed is the resting state.
	Closed
	// Expanded shows all of the side's actions.
	Expanded
	// Triggering highlights the edge action while the drag is past the
	// trigger point. Drag only.
	Triggering
	// Triggered fills the row with the edge action after release.
	Triggered
)

// IsOpen reports whether the state reveals actions.
func (s State) IsOpen() bool {
	return s == Expanded || s == Triggering || s == Triggered
}

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case Closed:
		return "closed"
	case Expanded:
		return "expanded"
	case Triggering:
		return "triggering"
	case Triggered:
		return "triggered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts a state name back into a State.
func ParseState(name string) (State, error) {
	switch name {
	case "none", "":
		return StateNone, nil
	case "closed":
		return Closed, nil
	case "expanded":
		return Expanded, nil
	case "triggering":
		return Triggering, nil
	case "triggered":
		return Triggered, nil
	}
	return StateNone, fmt.Errorf("unknown swipe state %q", name)
}

// ParseSide converts a side name back into a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "leading":
		return Leading, nil
	case "trailing":
		return Trailing, nil
	}
	return Leading, fmt.Errorf("unknown swipe side %q", name)
}

// Alignment positions an action's label inside its frame.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeading
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	default:
		return "center"
	}
}

// Transition records one side changing state.
type Transition struct {
	Side Side
	From State
	To   State
}

func (t Transition) String() string {
	return fmt.Sprintf("%s:%s->%s", t.Side, t.From, t.To)
}

// diffStates lists the sides whose state changed, leading first.
func diffStates(before, after [2]State) []Transition {
	var out []Transition
	for _, side := range []Side{Leading, Trailing} {
		if before[side] != after[side] {
			out = append(out, Transition{Side: side, From: before[side], To: after[side]})
		}
	}
	return out
}
