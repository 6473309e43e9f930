// Package multiselect implements the state engine of a multi-select combo
// box: an observable ordered collection of checkable options with a derived
// summary text, a derived select-all tri-state, capacity limits and
// coalesced change notification. It is headless and single-threaded; the
// widget package renders it for terminal UIs.
package multiselect

import (
	"fmt"

	"multiselect/internal/options"
)

// Type selects which option field feeds the display text or the reported
// selection payload.
type Type int

const (
	// TypeText uses the option's display text.
	TypeText Type = iota
	// TypeValue uses the option's associated value.
	TypeValue
)

func (t Type) valid() bool {
	return t == TypeText || t == TypeValue
}

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeValue:
		return "value"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a configuration string into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "text":
		return TypeText, nil
	case "value":
		return TypeValue, nil
	default:
		return 0, fmt.Errorf("type must be %q or %q, got %q", "text", "value", s)
	}
}

// CheckState is the tri-state of the select-all pseudo-option.
type CheckState int

const (
	// Unchecked means no option is checked.
	Unchecked CheckState = iota
	// Partial means some but not all options are checked.
	Partial
	// Checked means every option is checked.
	Checked
)

func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Partial:
		return "partial"
	case Checked:
		return "checked"
	default:
		return fmt.Sprintf("CheckState(%d)", int(s))
	}
}

// Option is one selectable row. A nil Value defaults to the Text when the
// option is added.
type Option struct {
	Text    string
	Value   any
	Enabled bool
	Checked bool
}

// FindOption adjusts text matching for FindByText. The default is an
// exact, case-insensitive match.
type FindOption func(*options.Match)

// MatchContains switches FindByText to substring matching.
func MatchContains() FindOption {
	return func(m *options.Match) { m.Contains = true }
}

// MatchCaseSensitive makes FindByText case-sensitive.
func MatchCaseSensitive() FindOption {
	return func(m *options.Match) { m.CaseSensitive = true }
}

type delimiterFlags struct {
	spaceBefore bool
	spaceAfter  bool
}

// DelimiterOption adjusts delimiter assembly for SetDisplayDelimiter.
type DelimiterOption func(*delimiterFlags)

// SpaceBefore pads the delimiter with a leading space.
func SpaceBefore() DelimiterOption {
	return func(f *delimiterFlags) { f.spaceBefore = true }
}

// SpaceAfter pads the delimiter with a trailing space.
func SpaceAfter() DelimiterOption {
	return func(f *delimiterFlags) { f.spaceAfter = true }
}
