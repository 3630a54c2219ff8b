package testing

import "github.com/go-drift/swipe/pkg/animation"

// FakeClock provides controllable time for deterministic animation tests.
// It is the animation package's ManualClock; Install makes it the animation
// clock.
type FakeClock = animation.ManualClock

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return animation.NewManualClock()
}
