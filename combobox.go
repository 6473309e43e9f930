package multiselect

import (
	"fmt"
	"reflect"

	"multiselect/internal/coalesce"
	"multiselect/internal/events"
	"multiselect/internal/format"
	"multiselect/internal/options"
)

// DefaultSelectAllText is the label of the select-all pseudo-option.
const DefaultSelectAllText = "Select All"

// ComboBox is the multi-select combo box facade. All state hangs off one
// instance and every method is synchronous; mutations are coalesced into a
// single recompute-and-notify pass per batch.
//
// A ComboBox is not safe for concurrent use. It is meant to be owned by a
// single event loop, the way a Bubble Tea model is.
type ComboBox struct {
	store *options.Store
	fmtr  *format.Formatter
	co    *coalesce.Coalescer

	displayType Type
	outputType  Type

	selectAllEnabled bool
	selectAllText    string
	coalescing       bool

	selectionChanged events.Stream[[]any]
	limitReached     events.Stream[int]

	currentText string
	lastEmitted []any
	inRecompute bool
	dirty       bool
}

// New creates an empty combo box with the defaults: value display and
// output, ", " delimiter, duplicates allowed, no selection limit, no
// select-all row, coalescing on.
func New() *ComboBox {
	c := &ComboBox{
		store:         options.New(),
		fmtr:          format.New(),
		displayType:   TypeValue,
		outputType:    TypeValue,
		selectAllText: DefaultSelectAllText,
		coalescing:    true,
		lastEmitted:   []any{},
	}
	c.co = coalesce.New(c.recompute)
	c.store.SetOnChange(c.invalidate)
	return c
}

// invalidate is the store's change observer. Inside a bulk window the
// recompute waits for EndUpdate; with coalescing on it is deferred to the
// next scheduling point; otherwise it runs now. A mutation raised by a
// notification handler marks the running pass dirty instead of recursing.
func (c *ComboBox) invalidate() {
	if c.inRecompute {
		c.dirty = true
		return
	}
	if c.co.InBulk() {
		return
	}
	if !c.coalescing {
		c.recompute()
		return
	}
	c.co.Mark()
}

// settle runs any pending deferred recompute so queries observe derived
// state that is already up to date.
func (c *ComboBox) settle() {
	c.co.FlushPending()
}

// recompute is the single coalesced pass: re-apply the selection limit,
// rebuild the summary text and emit selectionChanged when the output
// snapshot actually changed. Handlers may write back into the box; those
// mutations mark the pass dirty and it repeats until the snapshot settles.
// The emission dedupe bounds the repetition.
func (c *ComboBox) recompute() {
	if c.inRecompute {
		return
	}
	c.inRecompute = true
	defer func() { c.inRecompute = false }()

	for {
		c.dirty = false
		if c.store.Prune() {
			c.limitReached.Publish(c.store.Limit())
		}
		c.currentText = c.fmtr.Format(c.displayItems())

		values := c.snapshot()
		if !reflect.DeepEqual(values, c.lastEmitted) {
			c.lastEmitted = values
			c.selectionChanged.Publish(values)
		}
		if !c.dirty {
			return
		}
	}
}

// displayItems returns the display strings of the checked options in
// ascending index order, per the display type.
func (c *ComboBox) displayItems() []string {
	checked := c.store.CheckedIndexes()
	items := make([]string, 0, len(checked))
	for _, i := range checked {
		opt, _ := c.store.Option(i)
		if c.displayType == TypeText {
			items = append(items, opt.Text)
		} else {
			items = append(items, stringify(opt.Value))
		}
	}
	return items
}

// snapshot returns the output-typed payload of the checked options in
// ascending index order.
func (c *ComboBox) snapshot() []any {
	checked := c.store.CheckedIndexes()
	values := make([]any, 0, len(checked))
	for _, i := range checked {
		opt, _ := c.store.Option(i)
		if c.outputType == TypeText {
			values = append(values, opt.Text)
		} else {
			values = append(values, opt.Value)
		}
	}
	return values
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// OnSelectionChanged registers a handler for the selection-changed
// notification. The handler receives the output-typed payload of the
// checked options. Returns the handler's remove function.
func (c *ComboBox) OnSelectionChanged(fn func(values []any)) (remove func()) {
	return c.selectionChanged.Subscribe(fn)
}

// OnLimitReached registers a handler for the advisory raised when an
// operation runs into the max selection count. Returns the handler's
// remove function.
func (c *ComboBox) OnLimitReached(fn func(limit int)) (remove func()) {
	return c.limitReached.Subscribe(fn)
}

// BeginUpdate opens a bulk window: mutations keep the option store and
// selection cache consistent but the recompute and notification wait for
// EndUpdate. Begin/End pairs nest.
func (c *ComboBox) BeginUpdate() {
	c.co.Begin()
}

// EndUpdate closes the bulk window and synchronously runs one full
// recompute and notification pass.
func (c *ComboBox) EndUpdate() {
	c.co.End()
}

// SetCoalescingEnabled toggles deferred recomputes outside bulk windows.
// With coalescing off every mutation recomputes synchronously.
func (c *ComboBox) SetCoalescingEnabled(enabled bool) {
	c.coalescing = enabled
	if !enabled {
		c.settle()
	}
}

// IsCoalescingEnabled reports whether coalescing is on.
func (c *ComboBox) IsCoalescingEnabled() bool {
	return c.coalescing
}

// HasPendingUpdate reports whether a deferred recompute is outstanding.
func (c *ComboBox) HasPendingUpdate() bool {
	return c.co.Pending()
}

// Flush runs any pending deferred recompute immediately.
func (c *ComboBox) Flush() {
	c.settle()
}

// SetScheduler installs the deferred-callback scheduler used to coalesce
// mutations. The widget wires this to its event loop; without a scheduler
// pending recomputes settle on the next query, EndUpdate or Flush.
func (c *ComboBox) SetScheduler(schedule func(fn func())) {
	c.co.SetScheduler(coalesce.Scheduler(schedule))
}

// SetOutputType selects the field reported by CurrentValues and the
// selection-changed payload. Invalid values error with no state change.
func (c *ComboBox) SetOutputType(t Type) error {
	if !t.valid() {
		return fmt.Errorf("invalid output type %v", t)
	}
	if c.outputType == t {
		return nil
	}
	c.outputType = t
	c.invalidate()
	return nil
}

// OutputType returns the current output type.
func (c *ComboBox) OutputType() Type {
	return c.outputType
}

// SetDisplayType selects the field joined into the summary text. Invalid
// values error with no state change.
func (c *ComboBox) SetDisplayType(t Type) error {
	if !t.valid() {
		return fmt.Errorf("invalid display type %v", t)
	}
	if c.displayType == t {
		return nil
	}
	c.displayType = t
	c.invalidate()
	return nil
}

// DisplayType returns the current display type.
func (c *ComboBox) DisplayType() Type {
	return c.displayType
}

// SetDisplayDelimiter configures the delimiter joining the summary text.
// A delimiter that already carries leading or trailing whitespace is used
// verbatim and the options are ignored.
func (c *ComboBox) SetDisplayDelimiter(delimiter string, opts ...DelimiterOption) {
	var flags delimiterFlags
	for _, opt := range opts {
		opt(&flags)
	}
	c.fmtr.SetDelimiter(delimiter, flags.spaceBefore, flags.spaceAfter)
	c.invalidate()
}

// DisplayDelimiter returns the assembled delimiter.
func (c *ComboBox) DisplayDelimiter() string {
	return c.fmtr.Delimiter()
}

// SetPlaceholderText sets the text shown when nothing is selected.
func (c *ComboBox) SetPlaceholderText(s string) {
	c.fmtr.SetPlaceholder(s)
	c.invalidate()
}

// PlaceholderText returns the placeholder.
func (c *ComboBox) PlaceholderText() string {
	return c.fmtr.Placeholder()
}

// SetDuplicatesEnabled sets whether AddOption accepts an option whose text
// or value collides with an existing one.
func (c *ComboBox) SetDuplicatesEnabled(enabled bool) {
	c.store.SetAllowDuplicates(enabled)
}

// IsDuplicatesEnabled reports the duplicate policy.
func (c *ComboBox) IsDuplicatesEnabled() bool {
	return c.store.AllowDuplicates()
}

// SetMaxSelectionCount limits how many options may be checked; n <= 0
// disables the limit. Tightening the limit below the current selection
// prunes it to the lowest-indexed n options and raises the limit-reached
// advisory.
func (c *ComboBox) SetMaxSelectionCount(n int) {
	if c.store.SetLimit(n) {
		c.limitReached.Publish(c.store.Limit())
	}
}

// MaxSelectionCount returns the limit, 0 when unlimited.
func (c *ComboBox) MaxSelectionCount() int {
	return c.store.Limit()
}

// SetSelectAllEnabled toggles the synthetic select-all row. Its state is
// always derived from the real options; see SelectAllState.
func (c *ComboBox) SetSelectAllEnabled(enabled bool) {
	c.selectAllEnabled = enabled
}

// IsSelectAllEnabled reports whether the select-all row is shown.
func (c *ComboBox) IsSelectAllEnabled() bool {
	return c.selectAllEnabled
}

// SetSelectAllText sets the select-all row label.
func (c *ComboBox) SetSelectAllText(s string) {
	if s == "" {
		s = DefaultSelectAllText
	}
	c.selectAllText = s
}

// SelectAllText returns the select-all row label.
func (c *ComboBox) SelectAllText() string {
	return c.selectAllText
}

// SetCountSummary switches the summary text to "{count} selected" once the
// selection reaches threshold (a threshold <= 0 always summarizes). An
// empty format selects the default; a custom one must contain {count}.
func (c *ComboBox) SetCountSummary(threshold int, formatStr string) error {
	if err := c.fmtr.SetCountSummary(threshold, formatStr); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// SetLeadingSummary switches the summary text to the first threshold items
// plus a "+{more} more" suffix. An empty format selects the default; a
// custom one must contain {more}.
func (c *ComboBox) SetLeadingSummary(threshold int, formatStr string) error {
	if err := c.fmtr.SetLeadingSummary(threshold, formatStr); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// ClearSummary disables summarization; the summary text joins every
// selected item again.
func (c *ComboBox) ClearSummary() {
	c.fmtr.ClearSummary()
	c.invalidate()
}
