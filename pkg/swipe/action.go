package swipe

// Content produces an action's label or background. The host decides what
// the returned value is (a widget, a string, a draw call); the engine only
// passes the highlight flag through.
type Content func(highlighted bool) any

// Action is one button revealed behind a row.
type Action struct {
	// Title is a plain-text label, used when Label is nil.
	Title string

	Label      Content
	Background Content

	// OnTrigger runs when the action is tapped or drag-triggered.
	OnTrigger func()

	// AllowSwipeToTrigger opts the edge action into drag-to-trigger. It is
	// ignored on every other action.
	AllowSwipeToTrigger bool

	// LabelFixedSize keeps the label at its intrinsic size.
	LabelFixedSize bool

	// LabelHorizontalPadding pads the label inside the action's frame.
	LabelHorizontalPadding float64

	// ChangeLabelVisibilityOnly applies the reveal opacity to the label
	// instead of the whole action.
	ChangeLabelVisibilityOnly bool
}

// NewAction returns a titled action with the stock label settings.
func NewAction(title string, onTrigger func()) Action {
	return Action{
		Title:                  title,
		OnTrigger:              onTrigger,
		LabelFixedSize:         true,
		LabelHorizontalPadding: 16,
	}
}

// WithSwipeToTrigger returns a copy with drag-to-trigger enabled.
func (a Action) WithSwipeToTrigger() Action {
	a.AllowSwipeToTrigger = true
	return a
}

// WithLabelVisibilityOnly returns a copy that fades only its label.
func (a Action) WithLabelVisibilityOnly() Action {
	a.ChangeLabelVisibilityOnly = true
	return a
}

// RenderLabel returns the label content, falling back to the title.
func (a Action) RenderLabel(highlighted bool) any {
	if a.Label != nil {
		return a.Label(highlighted)
	}
	return a.Title
}

// RenderBackground returns the background content, or nil.
func (a Action) RenderBackground(highlighted bool) any {
	if a.Background != nil {
		return a.Background(highlighted)
	}
	return nil
}

// ActionOpacity splits a side's reveal opacity into the opacity of the
// whole action and of its label.
func ActionOpacity(a Action, opacity float64) (whole, label float64) {
	if a.ChangeLabelVisibilityOnly {
		return 1, opacity
	}
	return opacity, 1
}

// edgeIndex is the index of the outermost action on a side, or -1.
func edgeIndex(side Side, count int) int {
	if count == 0 {
		return -1
	}
	if side == Trailing {
		return count - 1
	}
	return 0
}

// SideContext is what a side's actions see of the row.
type SideContext struct {
	Side              Side
	State             State
	NumberOfActions   int
	Opacity           float64
	CurrentlyDragging bool

	// HighlightAnimation is the spring hosts use to animate the edge
	// action's highlight as ActionLayout.Highlighted flips.
	HighlightAnimation SpringSpec
}
