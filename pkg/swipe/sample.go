package swipe

import (
	"time"

	"github.com/go-drift/swipe/pkg/geometry"
)

// DragSample is one tick of a drag gesture as reported by the platform.
type DragSample struct {
	// Position is the pointer location in the row's coordinate space.
	Position geometry.Offset
	// Translation is the pointer movement since the drag began.
	Translation geometry.Offset
	// Time is when the sample was taken.
	Time time.Time
	// PredictedEndTranslation is where the platform expects the drag to
	// come to rest, given its current velocity.
	PredictedEndTranslation geometry.Offset
}
