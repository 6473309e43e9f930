package options

import (
	"reflect"
	"sort"
	"strings"
)

// Option is one selectable row: display text, an opaque associated value,
// an enabled flag and a checked flag.
type Option struct {
	Text    string
	Value   any
	Enabled bool
	Checked bool
}

// Store is an ordered collection of options plus a cache of the checked
// indexes. The cache is kept consistent with the option flags after every
// mutation so reads never rescan the whole list.
type Store struct {
	opts            []Option
	checked         map[int]struct{}
	allowDuplicates bool
	limit           int // <= 0 means unlimited
	onChange        func()
}

// New creates an empty store with duplicates allowed and no selection limit.
func New() *Store {
	return &Store{
		checked:         make(map[int]struct{}),
		allowDuplicates: true,
	}
}

// SetOnChange registers the observer invoked synchronously after any
// mutation that changed the store.
func (s *Store) SetOnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Len returns the number of options.
func (s *Store) Len() int {
	return len(s.opts)
}

// Option returns a copy of the option at index i.
func (s *Store) Option(i int) (Option, bool) {
	if i < 0 || i >= len(s.opts) {
		return Option{}, false
	}
	return s.opts[i], true
}

// Options returns a copy of the full option list.
func (s *Store) Options() []Option {
	out := make([]Option, len(s.opts))
	copy(out, s.opts)
	return out
}

// SetAllowDuplicates sets the duplicate policy for subsequent adds.
func (s *Store) SetAllowDuplicates(allow bool) {
	s.allowDuplicates = allow
}

// AllowDuplicates reports the current duplicate policy.
func (s *Store) AllowDuplicates() bool {
	return s.allowDuplicates
}

// isDuplicate reports whether an option with the same text or the same
// value already exists.
func (s *Store) isDuplicate(text string, value any) bool {
	for i := range s.opts {
		if s.opts[i].Text == text || equalValues(s.opts[i].Value, value) {
			return true
		}
	}
	return false
}

// Add appends an option. A nil value defaults to the text. When duplicates
// are disallowed and the text or value collides with an existing option the
// add is rejected and false is returned.
func (s *Store) Add(text string, value any) bool {
	if value == nil {
		value = text
	}
	if !s.allowDuplicates && s.isDuplicate(text, value) {
		return false
	}
	s.opts = append(s.opts, Option{Text: text, Value: value, Enabled: true})
	s.notify()
	return true
}

// Remove deletes the option at index i. Later indexes shift down and the
// checked cache is rebuilt.
func (s *Store) Remove(i int) bool {
	if i < 0 || i >= len(s.opts) {
		return false
	}
	s.opts = append(s.opts[:i], s.opts[i+1:]...)
	s.rebuild()
	s.notify()
	return true
}

// RemoveMany deletes the given indexes. Out-of-range indexes are ignored.
func (s *Store) RemoveMany(indices []int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.opts) {
			drop[i] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := s.opts[:0]
	for i := range s.opts {
		if _, gone := drop[i]; !gone {
			kept = append(kept, s.opts[i])
		}
	}
	s.opts = kept
	s.rebuild()
	s.notify()
}

// Replace swaps the entire backing list. The checked cache is rebuilt from
// the new flags and the selection limit re-applied.
func (s *Store) Replace(opts []Option) {
	s.opts = make([]Option, len(opts))
	copy(s.opts, opts)
	s.rebuild()
	s.notify()
}

// Clear removes every option.
func (s *Store) Clear() {
	s.opts = nil
	s.checked = make(map[int]struct{})
	s.notify()
}

// SetEnabled flips the enabled flag of the option at index i.
func (s *Store) SetEnabled(i int, enabled bool) bool {
	if i < 0 || i >= len(s.opts) || s.opts[i].Enabled == enabled {
		return false
	}
	s.opts[i].Enabled = enabled
	s.notify()
	return true
}

// rebuild recomputes the checked cache from the option flags and prunes any
// selection that exceeds the limit. Pruning here also catches callers that
// flipped flags behind the store's back.
func (s *Store) rebuild() {
	s.checked = make(map[int]struct{}, len(s.opts))
	for i := range s.opts {
		if s.opts[i].Checked {
			s.checked[i] = struct{}{}
		}
	}
	s.prune()
}

// prune unchecks options beyond the selection limit, keeping the
// lowest-indexed checked options. Returns true when anything was dropped.
func (s *Store) prune() bool {
	if s.limit <= 0 || len(s.checked) <= s.limit {
		return false
	}
	kept := 0
	dropped := false
	for i := range s.opts {
		if !s.opts[i].Checked {
			continue
		}
		if kept < s.limit {
			kept++
			continue
		}
		s.opts[i].Checked = false
		delete(s.checked, i)
		dropped = true
	}
	return dropped
}

// Prune re-applies the selection limit and reports whether any option was
// unchecked by it.
func (s *Store) Prune() bool {
	if s.prune() {
		s.notify()
		return true
	}
	return false
}

// SetLimit sets the maximum number of checked options. A value <= 0
// disables the limit. Returns true when an existing selection was pruned.
func (s *Store) SetLimit(n int) bool {
	if n < 0 {
		n = 0
	}
	s.limit = n
	return s.Prune()
}

// Limit returns the current selection limit, 0 when unlimited.
func (s *Store) Limit() int {
	return s.limit
}

// Capacity returns how many more options may be checked, or -1 when
// unlimited.
func (s *Store) Capacity() int {
	if s.limit <= 0 {
		return -1
	}
	c := s.limit - len(s.checked)
	if c < 0 {
		c = 0
	}
	return c
}

// CheckedCount returns the number of checked options.
func (s *Store) CheckedCount() int {
	return len(s.checked)
}

// IsChecked reports whether the option at index i is checked.
func (s *Store) IsChecked(i int) bool {
	_, ok := s.checked[i]
	return ok
}

// CheckedIndexes returns the checked indexes in ascending order.
func (s *Store) CheckedIndexes() []int {
	out := make([]int, 0, len(s.checked))
	for i := range s.checked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SetChecked sets a single option's checked state, ignoring the limit.
// Used for programmatic toggles, which may also target disabled options.
func (s *Store) SetChecked(i int, checked bool) bool {
	if i < 0 || i >= len(s.opts) || s.opts[i].Checked == checked {
		return false
	}
	s.opts[i].Checked = checked
	if checked {
		s.checked[i] = struct{}{}
	} else {
		delete(s.checked, i)
	}
	s.notify()
	return true
}

// Check checks the option at index i subject to the limit. Returns false
// when the index is out of range, the option is already checked, or the
// selection is at capacity.
func (s *Store) Check(i int) bool {
	if i < 0 || i >= len(s.opts) || s.opts[i].Checked {
		return false
	}
	if s.limit > 0 && len(s.checked) >= s.limit {
		return false
	}
	s.opts[i].Checked = true
	s.checked[i] = struct{}{}
	s.notify()
	return true
}

// SetCheckedSet makes exactly the given indexes checked and everything else
// unchecked. Out-of-range indexes are clamped out. When the request exceeds
// the limit only the lowest-indexed limit-many are honored; truncated
// reports whether anything was dropped for that reason.
func (s *Store) SetCheckedSet(indices []int) (changed, truncated bool) {
	want := make(map[int]struct{}, len(indices))
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	for _, i := range sorted {
		if i < 0 || i >= len(s.opts) {
			continue
		}
		if s.limit > 0 && len(want) >= s.limit {
			if _, dup := want[i]; !dup {
				truncated = true
			}
			continue
		}
		want[i] = struct{}{}
	}
	for i := range s.opts {
		_, should := want[i]
		if s.opts[i].Checked != should {
			s.opts[i].Checked = should
			changed = true
		}
	}
	if changed {
		s.checked = want
		s.notify()
	}
	return changed, truncated
}

// CheckAll checks every option in index order up to the remaining capacity.
// skipped reports whether any option was left unchecked because the limit
// was hit.
func (s *Store) CheckAll() (changed, skipped bool) {
	for i := range s.opts {
		if s.opts[i].Checked {
			continue
		}
		if s.limit > 0 && len(s.checked) >= s.limit {
			skipped = true
			break
		}
		s.opts[i].Checked = true
		s.checked[i] = struct{}{}
		changed = true
	}
	if changed {
		s.notify()
	}
	return changed, skipped
}

// UncheckAll unchecks every option.
func (s *Store) UncheckAll() bool {
	if len(s.checked) == 0 {
		return false
	}
	for i := range s.opts {
		s.opts[i].Checked = false
	}
	s.checked = make(map[int]struct{})
	s.notify()
	return true
}

// Invert flips every option's checked state. Flips from unchecked to
// checked that would exceed the limit are skipped in index order; skipped
// reports whether that happened.
func (s *Store) Invert() (changed, skipped bool) {
	next := make(map[int]struct{}, len(s.opts))
	for i := range s.opts {
		if s.opts[i].Checked {
			s.opts[i].Checked = false
			changed = true
			continue
		}
		if s.limit > 0 && len(next) >= s.limit {
			skipped = true
			continue
		}
		s.opts[i].Checked = true
		next[i] = struct{}{}
		changed = true
	}
	s.checked = next
	if changed {
		s.notify()
	}
	return changed, skipped
}

// Match configures text matching for FindText.
type Match struct {
	Contains      bool
	CaseSensitive bool
}

// FindText returns the index of the first option whose text matches, or -1.
// The default zero Match means exact, case-insensitive.
func (s *Store) FindText(text string, m Match) int {
	needle := text
	if !m.CaseSensitive {
		needle = strings.ToLower(needle)
	}
	for i := range s.opts {
		hay := s.opts[i].Text
		if !m.CaseSensitive {
			hay = strings.ToLower(hay)
		}
		if m.Contains {
			if strings.Contains(hay, needle) {
				return i
			}
		} else if hay == needle {
			return i
		}
	}
	return -1
}

// FindValue returns the index of the first option whose value is equal to
// v, or -1. Values are compared by value equality.
func (s *Store) FindValue(v any) int {
	for i := range s.opts {
		if equalValues(s.opts[i].Value, v) {
			return i
		}
	}
	return -1
}

// equalValues compares two opaque payloads by value equality.
func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
