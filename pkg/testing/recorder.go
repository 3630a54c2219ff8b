package testing

import (
	"sync"

	"github.com/go-drift/swipe/pkg/errors"
	"github.com/go-drift/swipe/pkg/swipe"
)

// Recorder collects everything a row reports to its host.
type Recorder struct {
	Transitions []swipe.Transition
	Haptics     []swipe.Side
	Frames      []float64
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Transitions = nil
	r.Haptics = nil
	r.Frames = nil
}

// LastFrame returns the most recent presented offset, if any frame was
// reported.
func (r *Recorder) LastFrame() (float64, bool) {
	if len(r.Frames) == 0 {
		return 0, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// wire chains the recorder in front of any callbacks already in cfg.
func (r *Recorder) wire(cfg *swipe.RowConfig) {
	onTransition, onHaptic, onFrame := cfg.OnTransition, cfg.OnHaptic, cfg.OnFrame
	cfg.OnTransition = func(t swipe.Transition) {
		r.Transitions = append(r.Transitions, t)
		if onTransition != nil {
			onTransition(t)
		}
	}
	cfg.OnHaptic = func(side swipe.Side) {
		r.Haptics = append(r.Haptics, side)
		if onHaptic != nil {
			onHaptic(side)
		}
	}
	cfg.OnFrame = func(offset float64) {
		r.Frames = append(r.Frames, offset)
		if onFrame != nil {
			onFrame(offset)
		}
	}
}

// ErrorRecorder is an errors.ErrorHandler that keeps what it receives.
type ErrorRecorder struct {
	mu      sync.Mutex
	errs    []*errors.SwipeError
	panics  []*errors.PanicError
	restore errors.ErrorHandler
}

// InstallErrorRecorder replaces the global error handler. Call Uninstall
// (or use t.Cleanup) to restore the previous one.
func InstallErrorRecorder() *ErrorRecorder {
	r := &ErrorRecorder{}
	r.restore = errors.SetHandler(r)
	return r
}

// Uninstall restores the handler that was active before.
func (r *ErrorRecorder) Uninstall() {
	errors.SetHandler(r.restore)
}

func (r *ErrorRecorder) HandleError(err *errors.SwipeError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns the reported errors.
func (r *ErrorRecorder) Errors() []*errors.SwipeError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.SwipeError(nil), r.errs...)
}

// Panics returns the recovered panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}
