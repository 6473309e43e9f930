// Package format derives the combo box's summary text from the selected
// display strings, the configured delimiter and optional summarization.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Summarization modes.
type Mode int

const (
	// ModeNone joins every selected item.
	ModeNone Mode = iota
	// ModeCount renders "{count} selected" once the selection reaches the
	// threshold.
	ModeCount
	// ModeLeading shows the first threshold items and appends a
	// "+{more} more" suffix for the rest.
	ModeLeading
)

// Default format strings.
const (
	DefaultCountFormat   = "{count} selected"
	DefaultLeadingFormat = "{shown} … +{more} more"
)

// Formatter assembles the display string. The zero value is not usable;
// call New.
type Formatter struct {
	delimiter   string
	placeholder string

	mode          Mode
	threshold     int
	countFormat   string
	leadingFormat string
}

// New returns a formatter with the default ", " delimiter, an empty
// placeholder and summarization disabled.
func New() *Formatter {
	f := &Formatter{
		countFormat:   DefaultCountFormat,
		leadingFormat: DefaultLeadingFormat,
	}
	f.SetDelimiter(",", false, true)
	return f
}

// SetDelimiter configures the join delimiter. spaceBefore and spaceAfter
// pad the delimiter, but when the caller's delimiter already carries edge
// whitespace it is used verbatim and the flags are ignored.
func (f *Formatter) SetDelimiter(delimiter string, spaceBefore, spaceAfter bool) {
	if strings.TrimSpace(delimiter) != delimiter {
		f.delimiter = delimiter
		return
	}
	prefix, suffix := "", ""
	if spaceBefore {
		prefix = " "
	}
	if spaceAfter {
		suffix = " "
	}
	f.delimiter = prefix + delimiter + suffix
}

// Delimiter returns the assembled delimiter.
func (f *Formatter) Delimiter() string {
	return f.delimiter
}

// SetPlaceholder sets the string returned when nothing is selected.
func (f *Formatter) SetPlaceholder(s string) {
	f.placeholder = s
}

// Placeholder returns the configured placeholder.
func (f *Formatter) Placeholder() string {
	return f.placeholder
}

// SetCountSummary enables count summarization. An empty format selects the
// default; a custom format must contain the {count} placeholder.
func (f *Formatter) SetCountSummary(threshold int, formatStr string) error {
	if formatStr == "" {
		formatStr = DefaultCountFormat
	}
	if !strings.Contains(formatStr, "{count}") {
		return fmt.Errorf("count summary format %q must contain {count}", formatStr)
	}
	f.mode = ModeCount
	f.threshold = threshold
	f.countFormat = formatStr
	return nil
}

// SetLeadingSummary enables leading summarization. An empty format selects
// the default; a custom format must contain the {more} placeholder.
// A threshold of 0 shows no leading items and always uses the suffix form.
func (f *Formatter) SetLeadingSummary(threshold int, formatStr string) error {
	if threshold < 0 {
		return fmt.Errorf("leading summary threshold must be >= 0, got %d", threshold)
	}
	if formatStr == "" {
		formatStr = DefaultLeadingFormat
	}
	if !strings.Contains(formatStr, "{more}") {
		return fmt.Errorf("leading summary format %q must contain {more}", formatStr)
	}
	f.mode = ModeLeading
	f.threshold = threshold
	f.leadingFormat = formatStr
	return nil
}

// ClearSummary disables summarization.
func (f *Formatter) ClearSummary() {
	f.mode = ModeNone
}

// Summarizing reports whether a summarization mode is active.
func (f *Formatter) Summarizing() bool {
	return f.mode != ModeNone
}

// Format renders the display string for the given selected items in
// selection order. It returns the placeholder when nothing is selected.
func (f *Formatter) Format(items []string) string {
	if len(items) == 0 {
		return f.placeholder
	}
	switch f.mode {
	case ModeCount:
		if f.threshold > 0 && len(items) < f.threshold {
			return strings.Join(items, f.delimiter)
		}
		return strings.ReplaceAll(f.countFormat, "{count}", strconv.Itoa(len(items)))
	case ModeLeading:
		if len(items) <= f.threshold {
			return strings.Join(items, f.delimiter)
		}
		shown := strings.Join(items[:f.threshold], f.delimiter)
		more := strconv.Itoa(len(items) - f.threshold)
		out := strings.ReplaceAll(f.leadingFormat, "{shown}", shown)
		return strings.ReplaceAll(out, "{more}", more)
	default:
		return strings.Join(items, f.delimiter)
	}
}
