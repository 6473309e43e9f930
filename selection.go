package multiselect

import (
	"strings"

	"multiselect/internal/options"
)

// AddOption appends an option with the given text and value; a nil value
// defaults to the text. With duplicates disabled the add is rejected (and
// false returned) when the text or value collides with an existing option.
func (c *ComboBox) AddOption(text string, value any) bool {
	return c.store.Add(text, value)
}

// AddOptions appends one option per text, paired by position with values;
// missing values default to the corresponding text.
func (c *ComboBox) AddOptions(texts []string, values []any) {
	for i, text := range texts {
		var v any
		if i < len(values) {
			v = values[i]
		}
		c.store.Add(text, v)
	}
}

// RemoveOption removes the option at index i; later indexes shift down.
func (c *ComboBox) RemoveOption(i int) bool {
	return c.store.Remove(i)
}

// RemoveOptions removes the given option indexes. Out-of-range indexes are
// ignored.
func (c *ComboBox) RemoveOptions(indices []int) {
	c.store.RemoveMany(indices)
}

// SetOptionEnabled flips an option's enabled flag. Disabled options are
// visible and programmatically togglable but refuse interactive toggles.
func (c *ComboBox) SetOptionEnabled(i int, enabled bool) bool {
	return c.store.SetEnabled(i, enabled)
}

// SetOptions replaces the entire option list. The selection cache is
// rebuilt from the new checked flags, clamped to the selection limit.
func (c *ComboBox) SetOptions(opts []Option) {
	converted := make([]options.Option, len(opts))
	for i, o := range opts {
		v := o.Value
		if v == nil {
			v = o.Text
		}
		converted[i] = options.Option{Text: o.Text, Value: v, Enabled: o.Enabled, Checked: o.Checked}
	}
	c.store.Replace(converted)
}

// ClearOptions removes every option.
func (c *ComboBox) ClearOptions() {
	c.store.Clear()
}

// OptionCount returns the number of real options. The select-all row is
// not an option.
func (c *ComboBox) OptionCount() int {
	return c.store.Len()
}

// OptionAt returns a copy of the option at index i.
func (c *ComboBox) OptionAt(i int) (Option, bool) {
	o, ok := c.store.Option(i)
	if !ok {
		return Option{}, false
	}
	return Option{Text: o.Text, Value: o.Value, Enabled: o.Enabled, Checked: o.Checked}, true
}

// Options returns a copy of the option list.
func (c *ComboBox) Options() []Option {
	src := c.store.Options()
	out := make([]Option, len(src))
	for i, o := range src {
		out[i] = Option{Text: o.Text, Value: o.Value, Enabled: o.Enabled, Checked: o.Checked}
	}
	return out
}

// OptionText returns the display text of the option at index i, or "" when
// out of range.
func (c *ComboBox) OptionText(i int) string {
	opt, ok := c.store.Option(i)
	if !ok {
		return ""
	}
	return opt.Text
}

// OptionValue returns the value of the option at index i, or nil when out
// of range.
func (c *ComboBox) OptionValue(i int) any {
	opt, ok := c.store.Option(i)
	if !ok {
		return nil
	}
	return opt.Value
}

// IsOptionEnabled reports whether the option at index i exists and is
// enabled.
func (c *ComboBox) IsOptionEnabled(i int) bool {
	opt, ok := c.store.Option(i)
	return ok && opt.Enabled
}

// SetCheckedIndexes makes exactly the given indexes checked and all others
// unchecked. Out-of-range indexes are clamped out; when the request
// exceeds the max selection count only the lowest-indexed limit-many are
// honored. The truncation is silent: bulk index sets are a hard policy,
// not an error.
func (c *ComboBox) SetCheckedIndexes(indices []int) {
	c.store.SetCheckedSet(indices)
}

// CheckedIndexes returns the checked option indexes in ascending order.
func (c *ComboBox) CheckedIndexes() []int {
	c.settle()
	return c.store.CheckedIndexes()
}

// IsOptionChecked reports whether the option at index i is checked.
func (c *ComboBox) IsOptionChecked(i int) bool {
	return c.store.IsChecked(i)
}

// CheckedCount returns the number of checked options.
func (c *ComboBox) CheckedCount() int {
	return c.store.CheckedCount()
}

// SelectAll checks every option, enabled or not, in index order up to the
// remaining capacity. Hitting the limit raises the limit-reached advisory;
// at capacity the state is left unchanged.
func (c *ComboBox) SelectAll() {
	_, skipped := c.store.CheckAll()
	if skipped {
		c.limitReached.Publish(c.store.Limit())
	}
}

// ClearSelection unchecks every option.
func (c *ComboBox) ClearSelection() {
	c.store.UncheckAll()
}

// InvertSelection flips every option's checked state. Flips to checked
// that would exceed the remaining capacity are skipped in index order and
// the limit-reached advisory is raised.
func (c *ComboBox) InvertSelection() {
	_, skipped := c.store.Invert()
	if skipped {
		c.limitReached.Publish(c.store.Limit())
	}
}

// ToggleOption flips one option's checked state programmatically. It works
// on disabled options. Checking past the remaining capacity is refused and
// raises the limit-reached advisory.
func (c *ComboBox) ToggleOption(i int) bool {
	opt, ok := c.store.Option(i)
	if !ok {
		return false
	}
	if opt.Checked {
		return c.store.SetChecked(i, false)
	}
	if c.store.Capacity() == 0 {
		c.limitReached.Publish(c.store.Limit())
		return false
	}
	return c.store.SetChecked(i, true)
}

// ToggleInteractive is the user-facing toggle: it refuses disabled options
// and otherwise behaves like ToggleOption. Index -1 addresses the select-all
// row when it is enabled. It reports whether the input was handled.
func (c *ComboBox) ToggleInteractive(i int) bool {
	if i == -1 {
		if !c.selectAllEnabled {
			return false
		}
		c.ToggleSelectAll()
		return true
	}
	opt, ok := c.store.Option(i)
	if !ok || !opt.Enabled {
		return false
	}
	return c.ToggleOption(i)
}

// ToggleSelectAll toggles the select-all pseudo-option: a fully checked
// collection is cleared, anything else is filled.
func (c *ComboBox) ToggleSelectAll() {
	if c.SelectAllState() == Checked {
		c.ClearSelection()
		return
	}
	c.SelectAll()
}

// SelectAllState derives the tri-state of the select-all pseudo-option:
// Unchecked when nothing is checked, Checked when everything is, Partial
// otherwise.
func (c *ComboBox) SelectAllState() CheckState {
	c.settle()
	n := c.store.Len()
	k := c.store.CheckedCount()
	switch {
	case k == 0:
		return Unchecked
	case k == n:
		return Checked
	default:
		return Partial
	}
}

// SelectByText selects the options named by s, which is split on the
// current display delimiter. An empty string clears the selection.
func (c *ComboBox) SelectByText(s string) {
	var tokens []string
	if s != "" {
		tokens = strings.Split(s, c.fmtr.Delimiter())
	}
	c.selectTokens(tokens)
}

// SelectByTexts selects the options named by the given tokens.
func (c *ComboBox) SelectByTexts(tokens []string) {
	c.selectTokens(tokens)
}

// selectTokens checks every option matched by a token and unchecks the
// rest. Tokens are trimmed of edge whitespace, then match option text first
// (exact, case-insensitive), then the stringified value. Matches beyond the
// remaining capacity are skipped and the limit-reached advisory raised.
func (c *ComboBox) selectTokens(tokens []string) {
	want := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		i := c.store.FindText(tok, options.Match{})
		if i < 0 {
			i = c.findValueString(tok)
		}
		if i >= 0 {
			want = append(want, i)
		}
	}
	if _, truncated := c.store.SetCheckedSet(want); truncated {
		c.limitReached.Publish(c.store.Limit())
	}
}

// findValueString returns the first option whose stringified value equals
// tok, or -1.
func (c *ComboBox) findValueString(tok string) int {
	for i, o := range c.store.Options() {
		if stringify(o.Value) == tok {
			return i
		}
	}
	return -1
}

// FindByText returns the index of the first option whose text matches, or
// -1. The default match is exact and case-insensitive; see MatchContains
// and MatchCaseSensitive.
func (c *ComboBox) FindByText(text string, opts ...FindOption) int {
	var m options.Match
	for _, opt := range opts {
		opt(&m)
	}
	return c.store.FindText(text, m)
}

// FindByValue returns the index of the first option whose value equals v
// by value equality, or -1.
func (c *ComboBox) FindByValue(v any) int {
	return c.store.FindValue(v)
}

// FilterOptions returns the indexes of options whose text contains the
// query case-insensitively, ranked by edit distance to the query. An empty
// query returns every index.
func (c *ComboBox) FilterOptions(query string) []int {
	return c.store.FilterContains(query)
}

// CurrentText returns the summary text: the display field of the checked
// options joined by the delimiter, the placeholder when nothing is
// checked, or the summarized form when summarization is active. Any
// pending recompute settles first.
func (c *ComboBox) CurrentText() string {
	c.settle()
	return c.currentText
}

// CurrentValues returns the output-typed payload of the checked options in
// ascending index order.
func (c *ComboBox) CurrentValues() []any {
	c.settle()
	return c.snapshot()
}
