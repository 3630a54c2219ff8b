package swipe

import (
	"time"

	"github.com/go-drift/swipe/pkg/animation"
)

// offsetDriver animates the presented offset of a row toward its committed
// offset. A new target replaces the running animation.
type offsetDriver struct {
	presented float64
	target    float64

	spring   *animation.SpringSimulation
	ticker   *animation.Ticker
	lastTime time.Time

	onFrame func(offset float64)
}

// follow jumps to value, cancelling any animation. Used while dragging.
func (d *offsetDriver) follow(value float64) {
	d.stop()
	d.target = value
	if d.presented == value {
		return
	}
	d.presented = value
	d.notify()
}

// animateTo springs toward target. velocity is a fraction of the remaining
// distance per second, positive toward the target. It returns false when no
// animation was needed.
func (d *offsetDriver) animateTo(target, velocity float64, spec SpringSpec) bool {
	if target == d.target && (d.isAnimating() || d.presented == target) {
		return false
	}
	d.stop()
	d.target = target
	distance := target - d.presented
	if distance == 0 {
		return false
	}

	d.spring = animation.NewSpringSimulation(spec.Description(), d.presented, velocity*distance, target)
	d.lastTime = animation.Now()
	d.ticker = animation.NewTicker(func(time.Duration) { d.tick() })
	d.ticker.Start()
	return true
}

func (d *offsetDriver) tick() {
	if d.spring == nil {
		d.stop()
		return
	}
	now := animation.Now()
	dt := now.Sub(d.lastTime).Seconds()
	d.lastTime = now

	done := d.spring.Step(dt)
	d.presented = d.spring.Position()
	d.notify()
	if done {
		d.stop()
	}
}

func (d *offsetDriver) isAnimating() bool {
	return d.ticker != nil && d.ticker.IsActive()
}

func (d *offsetDriver) stop() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
	d.spring = nil
}

func (d *offsetDriver) notify() {
	if d.onFrame != nil {
		d.onFrame(d.presented)
	}
}
