// Package swipe implements the engine behind a swipeable row: a row whose
// content slides horizontally to reveal leading and trailing action buttons.
//
// The engine turns a stream of drag samples into a content offset and a
// discrete [State] per [Side]:
//
//	Closed ──drag──► (none) ──release past ready-to-expand──► Expanded
//	                   │
//	                   └─ drag past ready-to-trigger (edge action opted in) ─► Triggering
//	                                                          release ─► Triggered
//
// Dragging toward a side without actions, or toward the side that is locked
// out while another side is open, rubber-bands the offset with a power curve
// instead of revealing anything.
//
// A host wires a [Row] to its gesture recognizer and renders from the read
// accessors:
//
//	row := swipe.NewRow(swipe.RowConfig{
//	    Options:  swipe.DefaultOptions(),
//	    Trailing: []swipe.Action{swipe.NewAction("Delete", remove).WithSwipeToTrigger()},
//	    Group:    group,
//	    OnHaptic: func(swipe.Side) { haptics.Impact() },
//	})
//	row.SetContentSize(size)
//
//	// gesture callbacks
//	row.OnDragChanged(sample)
//	row.OnDragEnded(sample)
//	row.OnDragCancelled()
//
//	// each frame, after animation.StepTickers()
//	x := row.PresentedOffset()
//	items := row.Layout(swipe.Trailing)
//
// Rows sharing a [Group] close each other so only one is open at a time.
//
// Everything runs on the caller's UI goroutine. Rows and groups hold no locks.
package swipe
