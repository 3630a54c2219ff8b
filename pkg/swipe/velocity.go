package swipe

import "github.com/go-drift/swipe/pkg/geometry"

// GestureVelocity derives drag velocity from the two most recent samples.
// The zero value is ready to use.
type GestureVelocity struct {
	previous, current DragSample
	count             int
}

// Update records a sample. Samples must arrive in order.
func (v *GestureVelocity) Update(sample DragSample) {
	if v.count > 0 {
		v.previous = v.current
	}
	v.current = sample
	if v.count < 2 {
		v.count++
	}
}

// Reset forgets all samples.
func (v *GestureVelocity) Reset() {
	*v = GestureVelocity{}
}

// Velocity returns the translation change per second between the last two
// samples, or zero when there are fewer than two or no time passed.
func (v *GestureVelocity) Velocity() geometry.Offset {
	if v.count < 2 {
		return geometry.Offset{}
	}
	dt := v.current.Time.Sub(v.previous.Time).Seconds()
	if dt <= 0 {
		return geometry.Offset{}
	}
	return v.current.Translation.Sub(v.previous.Translation).Scale(1 / dt)
}
