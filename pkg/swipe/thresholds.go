package swipe

import "math"

// Thresholds are the signed offsets at which one side of a row changes
// behavior. Leading values are positive, trailing values negative.
type Thresholds struct {
	Side Side
	// ReadyToExpand is how far a release must be predicted to land to expand.
	ReadyToExpand float64
	// Expanded is the resting offset with every action shown.
	Expanded float64
	// ReadyToTrigger is where the edge action starts triggering.
	ReadyToTrigger float64
	// Triggered is the resting offset once the row has flown off-screen.
	Triggered float64
}

// ComputeThresholds derives a side's thresholds from the options, the number
// of actions on that side and the measured row width. Nothing is cached:
// callers recompute whenever counts or options change.
func ComputeThresholds(side Side, opts Options, count int, rowWidth float64) Thresholds {
	sign := side.Sign()
	expanded := opts.actionsWidth(count) + opts.Spacing
	readyToTrigger := math.Max(expanded+opts.ReadyToTriggerPadding, opts.MinimumPointToTrigger)
	return Thresholds{
		Side:           side,
		ReadyToExpand:  sign * opts.ReadyToExpandPadding,
		Expanded:       sign * expanded,
		ReadyToTrigger: sign * readyToTrigger,
		Triggered:      sign * (rowWidth + opts.Spacing),
	}
}

// passed reports whether offset lies beyond threshold in this side's direction.
func (t Thresholds) passed(offset, threshold float64) bool {
	if t.Side == Trailing {
		return offset < threshold
	}
	return offset > threshold
}

// rubberBand compresses a distance with a power curve, preserving its sign.
func rubberBand(distance, power float64) float64 {
	if distance == 0 {
		return 0
	}
	return math.Copysign(math.Pow(math.Abs(distance), power), distance)
}
