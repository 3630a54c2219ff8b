package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springFPS is the fixed integration rate. Frame deltas are split into
// steps of this size so the motion does not depend on the host frame rate.
const springFPS = 240

// maxStepSeconds caps a single Step call. A host that stalls for seconds
// resumes the animation instead of replaying every missed step.
const maxStepSeconds = 0.25

// SpringDescription describes a damped spring with unit-agnostic mass,
// stiffness and damping coefficients.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// IOSSpring returns the spring used when no other description is configured:
// unit mass, stiffness 160, damping 70, which settles without overshoot.
func IOSSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 160, Damping: 70}
}

// Valid reports whether every coefficient is positive and finite.
func (d SpringDescription) Valid() bool {
	return isPositive(d.Mass) && isPositive(d.Stiffness) && isPositive(d.Damping)
}

// AngularFrequency returns sqrt(k/m).
func (d SpringDescription) AngularFrequency() float64 {
	return math.Sqrt(d.Stiffness / d.Mass)
}

// DampingRatio returns c / (2*sqrt(k*m)). 1 is critical damping.
func (d SpringDescription) DampingRatio() float64 {
	return d.Damping / (2 * math.Sqrt(d.Stiffness*d.Mass))
}

// Tolerance decides when a simulation has settled.
type Tolerance struct {
	Distance float64
	Velocity float64
}

// DefaultTolerance settles within a tenth of a pixel moving slower than two
// pixels per second.
var DefaultTolerance = Tolerance{Distance: 0.1, Velocity: 2}

// SpringSimulation moves a position toward a target with spring physics.
type SpringSimulation struct {
	spring    harmonica.Spring
	step      float64
	position  float64
	velocity  float64
	target    float64
	remainder float64
	done      bool

	// Tolerance defaults to DefaultTolerance.
	Tolerance Tolerance
}

// NewSpringSimulation starts a simulation at position with the given initial
// velocity (units per second) heading for target. An invalid description
// falls back to IOSSpring.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	if !desc.Valid() {
		desc = IOSSpring()
	}
	step := harmonica.FPS(springFPS)
	if !isFinite(velocity) {
		velocity = 0
	}
	s := &SpringSimulation{
		spring:    harmonica.NewSpring(step, desc.AngularFrequency(), desc.DampingRatio()),
		step:      step,
		position:  position,
		velocity:  velocity,
		target:    target,
		Tolerance: DefaultTolerance,
	}
	s.done = s.settled()
	if s.done {
		s.position = target
		s.velocity = 0
	}
	return s
}

// Step advances the simulation by dt seconds and reports whether it has
// settled. A settled simulation snaps exactly onto its target.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 || !isFinite(dt) {
		return false
	}
	s.remainder += math.Min(dt, maxStepSeconds)
	for s.remainder >= s.step {
		s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
		s.remainder -= s.step
		if s.settled() {
			s.position = s.target
			s.velocity = 0
			s.remainder = 0
			s.done = true
			break
		}
	}
	return s.done
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the resting position.
func (s *SpringSimulation) Target() float64 { return s.target }

// IsDone reports whether the simulation has settled.
func (s *SpringSimulation) IsDone() bool { return s.done }

func (s *SpringSimulation) settled() bool {
	return math.Abs(s.position-s.target) <= s.Tolerance.Distance &&
		math.Abs(s.velocity) <= s.Tolerance.Velocity
}

func isPositive(v float64) bool {
	return v > 0 && isFinite(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
