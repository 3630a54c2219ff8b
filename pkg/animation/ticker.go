// Package animation provides the frame-driven timing and spring physics used
// to animate swipe rows between their settled offsets.
//
// # Core Components
//
//   - [Ticker]: calls a callback once per frame while active. The host drives
//     every active ticker by calling [StepTickers] from its frame loop.
//
//   - [SpringSimulation]: damped harmonic motion toward a target, described by
//     mass, stiffness and damping ([SpringDescription]). Used for the close,
//     expand and trigger transitions of a row.
//
//   - [Clock]: the time source shared by tickers. Tests replace it with
//     [SetClock] to advance animations without sleeping.
//
// # Basic Usage
//
//	sim := animation.NewSpringSimulation(animation.IOSSpring(), from, 0, to)
//	last := animation.Now()
//	var ticker *animation.Ticker
//	ticker = animation.NewTicker(func(time.Duration) {
//	    now := animation.Now()
//	    done := sim.Step(now.Sub(last).Seconds())
//	    last = now
//	    apply(sim.Position())
//	    if done {
//	        ticker.Stop()
//	    }
//	})
//	ticker.Start()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(Now().Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
