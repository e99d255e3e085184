package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ToggleStyle selects how a boolean switch is drawn.
// All variants render the same on/off value; only the presentation differs.
type ToggleStyle string

const (
	ToggleStyleSwitch    ToggleStyle = "switch"
	ToggleStyleCheckbox  ToggleStyle = "checkbox"
	ToggleStyleSegmented ToggleStyle = "segmented"
	ToggleStyleIcon      ToggleStyle = "icon"
	ToggleStyleRadio     ToggleStyle = "radio"

	DefaultToggleStyle = ToggleStyleSwitch
)

// ErrUnknownToggleStyle is returned by ParseToggleStyle for unsupported names.
var ErrUnknownToggleStyle = errors.New("unknown toggle style")

var toggleStyles = []ToggleStyle{
	ToggleStyleSwitch,
	ToggleStyleCheckbox,
	ToggleStyleSegmented,
	ToggleStyleIcon,
	ToggleStyleRadio,
}

// ToggleStyles returns every supported style in cycle order.
func ToggleStyles() []ToggleStyle {
	out := make([]ToggleStyle, len(toggleStyles))
	copy(out, toggleStyles)
	return out
}

// ParseToggleStyle parses a style name (case-insensitive).
func ParseToggleStyle(raw string) (ToggleStyle, error) {
	s := ToggleStyle(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range toggleStyles {
		if s == known {
			return s, nil
		}
	}
	return DefaultToggleStyle, fmt.Errorf("%w: %q", ErrUnknownToggleStyle, raw)
}

// Next returns the style following s in cycle order, wrapping around.
// Unknown styles restart the cycle.
func (s ToggleStyle) Next() ToggleStyle {
	for i, known := range toggleStyles {
		if s == known {
			return toggleStyles[(i+1)%len(toggleStyles)]
		}
	}
	return toggleStyles[0]
}

// String implements fmt.Stringer.
func (s ToggleStyle) String() string {
	return string(s)
}
