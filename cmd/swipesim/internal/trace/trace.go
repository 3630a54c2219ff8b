// Package trace reads the YAML drag traces replayed by swipesim.
//
// A trace names a set of rows, then lists the events applied to them in
// order:
//
//	version: v1.0.0
//	options: options.yaml
//	rows:
//	  - name: inbox
//	    width: 390
//	    trailing:
//	      - title: Archive
//	      - title: Delete
//	        swipeToTrigger: true
//	events:
//	  - {row: inbox, type: change, x: -40}
//	  - {row: inbox, type: change, x: -260, after: 48ms}
//	  - {row: inbox, type: end, x: -260, predicted: -300}
//	  - {type: wait, after: 1s}
package trace

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/swipe/pkg/errors"
)

// SupportedMajor is the trace format major version this build reads.
const SupportedMajor = "v1"

// DefaultInterval separates events that do not set After.
const DefaultInterval = 16 * time.Millisecond

// EventType is what an event does to its row.
type EventType string

const (
	Change EventType = "change"
	End    EventType = "end"
	Cancel EventType = "cancel"
	Set    EventType = "set"
	Tap    EventType = "tap"
	Wait   EventType = "wait"
)

func (t EventType) valid() bool {
	switch t {
	case Change, End, Cancel, Set, Tap, Wait:
		return true
	}
	return false
}

// Trace is a decoded trace file.
type Trace struct {
	Version string `yaml:"version"`
	// Options is a path to an options file, relative to the trace.
	Options string    `yaml:"options,omitempty"`
	Rows    []RowSpec `yaml:"rows"`
	Events  []Event   `yaml:"events"`

	// Dir is the directory the trace was loaded from.
	Dir string `yaml:"-"`
}

// RowSpec describes one row.
type RowSpec struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	// Content is measured for the row size when Width is unset.
	Content  string       `yaml:"content,omitempty"`
	Leading  []ActionSpec `yaml:"leading,omitempty"`
	Trailing []ActionSpec `yaml:"trailing,omitempty"`
}

// ActionSpec describes one action.
type ActionSpec struct {
	Title          string `yaml:"title"`
	SwipeToTrigger bool   `yaml:"swipeToTrigger,omitempty"`
	LabelOnly      bool   `yaml:"labelOnly,omitempty"`
}

// Event is one step of the timeline.
type Event struct {
	Row  string    `yaml:"row,omitempty"`
	Type EventType `yaml:"type"`

	// X is the drag translation for change and end.
	X float64 `yaml:"x,omitempty"`
	// Predicted is the predicted end translation for end; defaults to X.
	Predicted *float64 `yaml:"predicted,omitempty"`

	// Side and State apply to set; Side and Index to tap.
	Side  string `yaml:"side,omitempty"`
	State string `yaml:"state,omitempty"`
	Index int    `yaml:"index,omitempty"`

	// After is the time since the previous event.
	After time.Duration `yaml:"after,omitempty"`
}

// PredictedX returns the predicted end translation.
func (e Event) PredictedX() float64 {
	if e.Predicted != nil {
		return *e.Predicted
	}
	return e.X
}

// Interval returns After, or DefaultInterval when unset.
func (e Event) Interval() time.Duration {
	if e.After > 0 {
		return e.After
	}
	return DefaultInterval
}

// Load reads and validates a trace file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tr, err := Parse(data)
	if err != nil {
		return nil, &errors.ParseError{Source: path, DataType: "trace", Err: err}
	}
	tr.Dir = filepath.Dir(path)
	return tr, nil
}

// Parse decodes and validates a trace.
func Parse(data []byte) (*Trace, error) {
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, err
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// OptionsPath resolves Options against the trace directory.
func (t *Trace) OptionsPath() string {
	if t.Options == "" || filepath.IsAbs(t.Options) {
		return t.Options
	}
	return filepath.Join(t.Dir, t.Options)
}

// Row returns the row named name.
func (t *Trace) Row(name string) (RowSpec, bool) {
	for _, r := range t.Rows {
		if r.Name == name {
			return r, true
		}
	}
	return RowSpec{}, false
}

// Validate checks the version, row names and event references.
func (t *Trace) Validate() error {
	var errs []error
	switch {
	case t.Version == "":
		t.Version = SupportedMajor + ".0.0"
	case !semver.IsValid(t.Version):
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", t.Version))
	case semver.Major(t.Version) != SupportedMajor:
		errs = append(errs, fmt.Errorf("version %s is not supported (want %s.x)", t.Version, SupportedMajor))
	}

	if len(t.Rows) == 0 {
		errs = append(errs, stderrors.New("trace has no rows"))
	}
	seen := make(map[string]bool, len(t.Rows))
	for i, r := range t.Rows {
		switch {
		case r.Name == "":
			errs = append(errs, fmt.Errorf("rows[%d]: name is required", i))
		case seen[r.Name]:
			errs = append(errs, fmt.Errorf("rows[%d]: duplicate name %q", i, r.Name))
		}
		seen[r.Name] = true
		if r.Width < 0 || r.Height < 0 {
			errs = append(errs, fmt.Errorf("rows[%d]: negative size", i))
		}
	}

	for i, e := range t.Events {
		if !e.Type.valid() {
			errs = append(errs, fmt.Errorf("events[%d]: unknown type %q", i, e.Type))
			continue
		}
		if e.After < 0 {
			errs = append(errs, fmt.Errorf("events[%d]: negative after", i))
		}
		if e.Type == Wait {
			continue
		}
		if !seen[e.Row] {
			errs = append(errs, fmt.Errorf("events[%d]: unknown row %q", i, e.Row))
		}
		if (e.Type == Set || e.Type == Tap) && e.Side == "" {
			errs = append(errs, fmt.Errorf("events[%d]: %s needs a side", i, e.Type))
		}
	}
	return stderrors.Join(errs...)
}
