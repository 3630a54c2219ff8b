package swipe

// animationKind selects which spring an offset change uses.
type animationKind int

const (
	animateClose animationKind = iota
	animateExpand
	animateTrigger
)

func (k animationKind) spring(opts Options) SpringSpec {
	switch k {
	case animateExpand:
		return opts.ExpandAnimation
	case animateTrigger:
		return opts.TriggerAnimation
	default:
		return opts.CloseAnimation
	}
}

// settleRequest asks the driver to animate to the committed offset.
type settleRequest struct {
	kind     animationKind
	target   float64
	velocity float64
}

// machine is the gesture-to-offset state machine of one row. It has no side
// effects: callers apply the transitions and settle requests it returns.
type machine struct {
	opts        Options
	counts      [2]int
	edgeTrigger [2]bool
	rowWidth    float64

	currentOffset float64
	savedOffset   float64

	lockedSide Side
	locked     bool

	states [2]State
}

func (m *machine) offset() float64 {
	return m.currentOffset + m.savedOffset
}

func (m *machine) thresholds(side Side) Thresholds {
	return ComputeThresholds(side, m.opts, m.counts[side], m.rowWidth)
}

func (m *machine) lock(side Side) {
	m.lockedSide = side
	m.locked = true
}

func (m *machine) unlock() {
	m.locked = false
}

// settled reports whether nothing is open and the offset rests at zero.
func (m *machine) settled() bool {
	return !m.states[Leading].IsOpen() && !m.states[Trailing].IsOpen() && m.offset() == 0
}

// disallowedSide returns the side a drag may not reveal: the one opposite
// the locked side, when the offset has moved onto it.
func (m *machine) disallowedSide(totalOffset float64) (Side, bool) {
	if m.opts.AllowSingleSwipeAcross || !m.locked {
		return Leading, false
	}
	switch m.lockedSide {
	case Leading:
		if totalOffset < 0 {
			return Trailing, true
		}
	case Trailing:
		if totalOffset > 0 {
			return Leading, true
		}
	}
	return Leading, false
}

// begin starts a drag session. The side lock is taken from the first
// nonzero translation unless a side is already locked by an open row.
func (m *machine) begin(translation float64) {
	if m.locked && m.savedOffset == 0 && !m.states[Leading].IsOpen() && !m.states[Trailing].IsOpen() {
		m.unlock()
	}
	m.lockFrom(translation)
}

// lockFrom locks the side a translation points at. A zero translation
// leaves the row unlocked.
func (m *machine) lockFrom(translation float64) {
	if m.locked || translation == 0 {
		return
	}
	m.lock(sideOf(translation))
}

// change applies a drag translation.
func (m *machine) change(translation float64) []Transition {
	before := m.states
	m.lockFrom(translation)
	total := m.savedOffset + translation
	disallowed, hasDisallowed := m.disallowedSide(total)
	power := m.opts.RubberBandPower

	switch {
	case (m.counts[Leading] == 0 || hasDisallowed && disallowed == Leading) && total > 0,
		(m.counts[Trailing] == 0 || hasDisallowed && disallowed == Trailing) && total < 0:
		m.currentOffset = rubberBand(total, power) - m.savedOffset
		m.states = [2]State{}
	default:
		handled := false
		for _, side := range []Side{Leading, Trailing} {
			th := m.thresholds(side)
			if !th.passed(total, th.ReadyToTrigger) {
				continue
			}
			handled = true
			if m.edgeTrigger[side] {
				m.currentOffset = translation
				m.states[side] = Triggering
				m.states[side.Opposite()] = StateNone
			} else {
				excess := total - th.ReadyToTrigger
				m.currentOffset = th.ReadyToTrigger + rubberBand(excess, power) - m.savedOffset
				m.states = [2]State{}
			}
		}
		if !handled {
			m.currentOffset = translation
			m.states = [2]State{}
		}
	}

	if m.opts.AllowSingleSwipeAcross && total != 0 {
		m.lock(sideOf(total))
	}
	return diffStates(before, m.states)
}

// end resolves a released drag into a settled state.
func (m *machine) end(translation, predictedEndTranslation, velocity float64) ([]Transition, settleRequest) {
	before := m.states
	total := m.savedOffset + translation
	predicted := (m.savedOffset + predictedEndTranslation) * 0.5

	if _, ok := m.disallowedSide(predicted); ok {
		return m.closeAll(before, velocity)
	}

	for _, side := range []Side{Trailing, Leading} {
		if m.states[side] == Triggering {
			m.states[side] = Triggered
			return diffStates(before, m.states), m.commit(animateTrigger, m.thresholds(side).Triggered, velocity)
		}
	}

	for _, side := range []Side{Leading, Trailing} {
		th := m.thresholds(side)
		if m.counts[side] > 0 && th.passed(predicted, th.ReadyToExpand) {
			m.states[side] = Expanded
			return diffStates(before, m.states), m.commit(animateExpand, th.Expanded, velocity)
		}
	}

	if total > 0 {
		// Released right of the row: return quicker.
		velocity *= -0.1
	}
	return m.closeAll(before, velocity)
}

func (m *machine) closeAll(before [2]State, velocity float64) ([]Transition, settleRequest) {
	m.unlock()
	m.states = [2]State{Closed, Closed}
	return diffStates(before, m.states), m.commit(animateClose, 0, velocity)
}

// commit moves the whole offset into savedOffset.
func (m *machine) commit(kind animationKind, target, velocity float64) settleRequest {
	m.savedOffset = target
	m.currentOffset = 0
	return settleRequest{kind: kind, target: target, velocity: velocity}
}

// set applies a programmatic state. The bool result is false when the row
// is already settled there and nothing needs to animate.
func (m *machine) set(side Side, state State) ([]Transition, settleRequest, bool) {
	before := m.states
	var req settleRequest
	switch state {
	case Closed:
		if m.states[side.Opposite()].IsOpen() {
			// The offset belongs to the other side.
			m.states[side] = Closed
			return diffStates(before, m.states), req, false
		}
		m.unlock()
		m.states[side] = Closed
		req = settleRequest{kind: animateClose, target: 0}
	case Expanded:
		m.lock(side)
		m.states[side] = Expanded
		req = settleRequest{kind: animateExpand, target: m.thresholds(side).Expanded}
	case Triggered:
		m.lock(side)
		m.states[side] = Triggered
		req = settleRequest{kind: animateTrigger, target: m.thresholds(side).Triggered}
	}
	if state.IsOpen() && m.states[side.Opposite()].IsOpen() {
		m.states[side.Opposite()] = Closed
	}
	transitions := diffStates(before, m.states)
	if len(transitions) == 0 && m.savedOffset == req.target && m.currentOffset == 0 {
		return nil, req, false
	}
	m.commit(req.kind, req.target, 0)
	return transitions, req, true
}

// forceClose closes both sides. Sides already closed are left alone.
func (m *machine) forceClose() ([]Transition, settleRequest) {
	before := m.states
	m.unlock()
	for _, side := range []Side{Leading, Trailing} {
		if m.states[side] != Closed {
			m.states[side] = Closed
		}
	}
	return diffStates(before, m.states), m.commit(animateClose, 0, 0)
}
