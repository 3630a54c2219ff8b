package swipe

import (
	stderrors "errors"
	"math"

	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/errors"
)

// ActionsStyle selects how actions are revealed.
type ActionsStyle int

const (
	// StyleMask renders actions at full width and uncovers them with a mask.
	StyleMask ActionsStyle = iota
	// StyleEqualWidths splits the visible width evenly between actions.
	StyleEqualWidths
	// StyleCascade stacks actions on top of each other, fanning them out as
	// the row opens.
	StyleCascade
)

func (s ActionsStyle) String() string {
	switch s {
	case StyleMask:
		return "mask"
	case StyleEqualWidths:
		return "equalWidths"
	case StyleCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

func (s ActionsStyle) valid() bool {
	return s >= StyleMask && s <= StyleCascade
}

// SpringSpec parameterizes one of the row's offset animations. Mass is 1.
type SpringSpec struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

// Description converts s into a unit-mass spring.
func (s SpringSpec) Description() animation.SpringDescription {
	return animation.SpringDescription{Mass: 1, Stiffness: s.Stiffness, Damping: s.Damping}
}

func defaultSpring() SpringSpec {
	return SpringSpec{Stiffness: 160, Damping: 70}
}

// Options configures a row. Every field is independent; start from
// DefaultOptions and override what you need.
type Options struct {
	// SwipeEnabled gates drag input. Programmatic state changes still apply.
	SwipeEnabled bool `yaml:"swipeEnabled"`

	// MinimumDragDistance is how far a drag travels before the row reacts.
	MinimumDragDistance float64 `yaml:"minimumDragDistance"`

	ActionsStyle ActionsStyle `yaml:"actionsStyle"`

	// ActionsMaskCornerRadius rounds the mask that uncovers all actions.
	ActionsMaskCornerRadius float64 `yaml:"actionsMaskCornerRadius"`

	// ActionsVisibleStartPoint is the dragged length at which actions start
	// fading in; ActionsVisibleEndPoint is where they become fully opaque.
	ActionsVisibleStartPoint float64 `yaml:"actionsVisibleStartPoint"`
	ActionsVisibleEndPoint   float64 `yaml:"actionsVisibleEndPoint"`

	ActionCornerRadius float64 `yaml:"actionCornerRadius"`
	ActionWidth        float64 `yaml:"actionWidth"`

	// Spacing separates actions from each other and from the content.
	Spacing float64 `yaml:"spacing"`

	// ReadyToExpandPadding is the dragged length past which a release expands.
	ReadyToExpandPadding float64 `yaml:"readyToExpandPadding"`

	// ReadyToTriggerPadding is added beyond the expanded offset to get the
	// trigger point, which is never closer than MinimumPointToTrigger.
	ReadyToTriggerPadding float64 `yaml:"readyToTriggerPadding"`
	MinimumPointToTrigger float64 `yaml:"minimumPointToTrigger"`

	EnableTriggerHaptics bool `yaml:"enableTriggerHaptics"`

	// RubberBandPower is the exponent applied to drag distance past a limit.
	RubberBandPower float64 `yaml:"rubberBandPower"`

	// AllowSingleSwipeAcross lets one drag move from the leading actions to
	// the trailing actions (or back) without closing first.
	AllowSingleSwipeAcross bool `yaml:"allowSingleSwipeAcross"`

	CloseAnimation   SpringSpec `yaml:"closeAnimation"`
	ExpandAnimation  SpringSpec `yaml:"expandAnimation"`
	TriggerAnimation SpringSpec `yaml:"triggerAnimation"`

	// ContentTriggerAnimation animates an edge action's own content when it
	// starts or stops filling the row. The row does not run it; it reaches
	// the host through SideContext.HighlightAnimation.
	ContentTriggerAnimation SpringSpec `yaml:"contentTriggerAnimation"`
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		SwipeEnabled:             true,
		MinimumDragDistance:      2,
		ActionsStyle:             StyleMask,
		ActionsMaskCornerRadius:  20,
		ActionsVisibleStartPoint: 50,
		ActionsVisibleEndPoint:   100,
		ActionCornerRadius:       32,
		ActionWidth:              100,
		Spacing:                  8,
		ReadyToExpandPadding:     50,
		ReadyToTriggerPadding:    20,
		MinimumPointToTrigger:    200,
		EnableTriggerHaptics:     true,
		RubberBandPower:          0.7,
		AllowSingleSwipeAcross:   false,
		CloseAnimation:           defaultSpring(),
		ExpandAnimation:          defaultSpring(),
		TriggerAnimation:         defaultSpring(),
		// 0.2s response, critically damped.
		ContentTriggerAnimation: SpringSpec{Stiffness: 987, Damping: 63},
	}
}

// Validate reports every malformed field. A nil result means Sanitized
// would return the options unchanged.
func (o Options) Validate() error {
	var errs []error
	bad := func(field string, value any, reason string) {
		errs = append(errs, &errors.FieldError{Field: field, Value: value, Reason: reason})
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"minimumDragDistance", o.MinimumDragDistance},
		{"actionsMaskCornerRadius", o.ActionsMaskCornerRadius},
		{"actionCornerRadius", o.ActionCornerRadius},
		{"actionWidth", o.ActionWidth},
		{"spacing", o.Spacing},
		{"readyToExpandPadding", o.ReadyToExpandPadding},
		{"readyToTriggerPadding", o.ReadyToTriggerPadding},
		{"minimumPointToTrigger", o.MinimumPointToTrigger},
	}
	for _, f := range nonNegative {
		if !(f.value >= 0) || math.IsInf(f.value, 0) {
			bad(f.field, f.value, "must be a finite, non-negative number")
		}
	}
	if !o.ActionsStyle.valid() {
		bad("actionsStyle", int(o.ActionsStyle), "must be mask, equalWidths or cascade")
	}
	if !(o.ActionsVisibleEndPoint > o.ActionsVisibleStartPoint) {
		bad("actionsVisibleEndPoint", o.ActionsVisibleEndPoint, "must be greater than actionsVisibleStartPoint")
	}
	if !(o.RubberBandPower > 0 && o.RubberBandPower <= 1) {
		bad("rubberBandPower", o.RubberBandPower, "must be in (0, 1]")
	}
	springs := []struct {
		field string
		spec  SpringSpec
	}{
		{"closeAnimation", o.CloseAnimation},
		{"expandAnimation", o.ExpandAnimation},
		{"triggerAnimation", o.TriggerAnimation},
		{"contentTriggerAnimation", o.ContentTriggerAnimation},
	}
	for _, s := range springs {
		if !s.spec.Description().Valid() {
			bad(s.field, s.spec, "stiffness and damping must be positive")
		}
	}
	return stderrors.Join(errs...)
}

// Sanitized clamps malformed fields into a usable configuration. It never
// fails: the engine runs on every frame of a gesture and must not stop.
func (o Options) Sanitized() Options {
	clampNonNegative := func(v *float64) {
		if !(*v >= 0) || math.IsInf(*v, 0) {
			*v = 0
		}
	}
	clampNonNegative(&o.MinimumDragDistance)
	clampNonNegative(&o.ActionsMaskCornerRadius)
	clampNonNegative(&o.ActionCornerRadius)
	clampNonNegative(&o.ActionWidth)
	clampNonNegative(&o.Spacing)
	clampNonNegative(&o.ReadyToExpandPadding)
	clampNonNegative(&o.ReadyToTriggerPadding)
	clampNonNegative(&o.MinimumPointToTrigger)

	if !o.ActionsStyle.valid() {
		o.ActionsStyle = StyleMask
	}
	if math.IsNaN(o.ActionsVisibleStartPoint) || math.IsInf(o.ActionsVisibleStartPoint, 0) {
		o.ActionsVisibleStartPoint = 0
	}
	if !(o.ActionsVisibleEndPoint > o.ActionsVisibleStartPoint) || math.IsInf(o.ActionsVisibleEndPoint, 0) {
		o.ActionsVisibleEndPoint = o.ActionsVisibleStartPoint + 1
	}
	switch {
	case math.IsNaN(o.RubberBandPower) || o.RubberBandPower <= 0:
		o.RubberBandPower = DefaultOptions().RubberBandPower
	case o.RubberBandPower > 1:
		o.RubberBandPower = 1
	}
	for _, s := range []*SpringSpec{&o.CloseAnimation, &o.ExpandAnimation, &o.TriggerAnimation} {
		if !s.Description().Valid() {
			*s = defaultSpring()
		}
	}
	if !o.ContentTriggerAnimation.Description().Valid() {
		o.ContentTriggerAnimation = DefaultOptions().ContentTriggerAnimation
	}
	return o
}

// actionsWidth is the width of count actions laid out at ActionWidth.
func (o Options) actionsWidth(count int) float64 {
	n := float64(count)
	return n*o.ActionWidth + (n-1)*o.Spacing
}
