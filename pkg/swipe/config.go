package swipe

import (
	stderrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/swipe/pkg/errors"
)

// LoadOptions reads options from a YAML file over DefaultOptions, so keys
// the file omits keep their defaults. A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return DefaultOptions(), nil
		}
		return Options{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, &errors.ParseError{Source: path, DataType: "swipe options", Err: err}
	}
	return opts, nil
}

// ParseOptions decodes YAML options over DefaultOptions.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// MarshalYAML encodes the style by name.
func (s ActionsStyle) MarshalYAML() (any, error) {
	if !s.valid() {
		return nil, fmt.Errorf("unknown actions style %d", int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML decodes "mask", "equalWidths" or "cascade".
func (s *ActionsStyle) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	style, err := ParseActionsStyle(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = style
	return nil
}

// ParseActionsStyle converts a style name into an ActionsStyle.
func ParseActionsStyle(name string) (ActionsStyle, error) {
	switch name {
	case "mask":
		return StyleMask, nil
	case "equalWidths", "equal-widths":
		return StyleEqualWidths, nil
	case "cascade":
		return StyleCascade, nil
	}
	return StyleMask, fmt.Errorf("unknown actions style %q", name)
}
