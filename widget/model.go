// Package widget renders a multiselect.ComboBox as a Bubble Tea component:
// a closed field showing the summary text and a popup list with checkbox
// rows, an optional select-all row, and an in-popup filter.
package widget

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect"
)

// row is one popup line: either the select-all pseudo-row or a real option.
type row struct {
	selectAll bool
	option    int
}

// eventQueue collects notifications raised by the combo box during an
// Update call so they can be re-emitted as Bubble Tea messages. It is
// shared by every copy of the model.
type eventQueue struct {
	msgs []tea.Msg
}

func (q *eventQueue) push(msg tea.Msg) {
	q.msgs = append(q.msgs, msg)
}

func (q *eventQueue) take() []tea.Msg {
	msgs := q.msgs
	q.msgs = nil
	return msgs
}

// Model is the Bubble Tea model wrapping a ComboBox. Create one with New;
// the zero value is not usable.
type Model struct {
	// Box is the combo box driven by this widget. Shared, never copied.
	Box *multiselect.ComboBox
	// Keys are the active key bindings.
	Keys KeyMap
	// Styles control rendering.
	Styles *Styles
	// Width is the rendered width of the field and popup.
	Width int
	// MaxVisible caps the popup rows shown before scrolling.
	MaxVisible int
	// CloseOnSelect closes the popup after an option toggle.
	CloseOnSelect bool

	help        help.Model
	filter      textinput.Model
	queue       *eventQueue
	unsubscribe []func()
	open        bool
	filtering   bool
	filtered    []int // option indexes currently shown; nil means no filter
	cursor      int
	offset      int
	guard       bool
	guardGen    int
}

// New creates a widget around the given combo box and subscribes to its
// notifications so they surface as Bubble Tea messages.
func New(box *multiselect.ComboBox) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"

	m := Model{
		Box:        box,
		Keys:       DefaultKeyMap(),
		Styles:     DefaultStyles(),
		Width:      44,
		MaxVisible: 8,
		help:       help.New(),
		filter:     ti,
		queue:      &eventQueue{},
	}
	q := m.queue
	m.unsubscribe = []func(){
		box.OnSelectionChanged(func(values []any) {
			q.push(SelectionChangedMsg{Values: values})
		}),
		box.OnLimitReached(func(limit int) {
			q.push(LimitReachedMsg{Limit: limit})
		}),
	}
	return m
}

// Detach unsubscribes the widget from the combo box notifications. Call it
// before building another widget over the same box, or when discarding the
// widget while the box lives on.
func (m Model) Detach() {
	for _, remove := range m.unsubscribe {
		remove()
	}
}

// Init implements the Bubble Tea lifecycle.
func (m Model) Init() tea.Cmd {
	return nil
}

// IsOpen reports whether the popup is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// Cursor returns the popup cursor row.
func (m Model) Cursor() int {
	return m.cursor
}

// FilterValue returns the current popup filter query.
func (m Model) FilterValue() string {
	return m.filter.Value()
}

// rows returns the popup rows in display order: the select-all pseudo-row
// first when enabled (and no filter is active), then the real options.
func (m Model) rows() []row {
	var rows []row
	if m.hasFilter() {
		for _, i := range m.filtered {
			rows = append(rows, row{option: i})
		}
		return rows
	}
	if m.Box.IsSelectAllEnabled() {
		rows = append(rows, row{selectAll: true, option: -1})
	}
	for i := 0; i < m.Box.OptionCount(); i++ {
		rows = append(rows, row{option: i})
	}
	return rows
}

func (m Model) hasFilter() bool {
	return m.filtering || m.filter.Value() != ""
}

func (m Model) maxVisible() int {
	if m.MaxVisible <= 0 {
		return 8
	}
	return m.MaxVisible
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < m.Width {
			m.Width = msg.Width
		}
		return m, nil

	case flushMsg:
		// The deferred recompute of the coalescer, arriving through the
		// single event loop.
		m.Box.Flush()
		return m, m.drain()

	case guardExpiredMsg:
		if msg.gen == m.guardGen {
			m.guard = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.open {
		if key.Matches(msg, m.Keys.Open) {
			if m.guard {
				// The keypress that closed the popup must not reopen it.
				m.guard = false
				m.guardGen++
				return m, nil
			}
			m.open = true
			m.cursor = 0
			m.offset = 0
		}
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.Keys.Toggle):
		return m.toggleAtCursor()
	case key.Matches(msg, m.Keys.SelectAll):
		m.Box.SelectAll()
		return m, m.sync()
	case key.Matches(msg, m.Keys.Clear):
		m.Box.ClearSelection()
		return m, m.sync()
	case key.Matches(msg, m.Keys.Invert):
		m.Box.InvertSelection()
		return m, m.sync()
	case key.Matches(msg, m.Keys.Filter):
		m.filtering = true
		m.filtered = m.Box.FilterOptions("")
		m.cursor = 0
		m.offset = 0
		return m, m.filter.Focus()
	case key.Matches(msg, m.Keys.Close):
		if m.hasFilter() {
			m.filter.SetValue("")
			m.filtered = nil
			m.cursor = 0
			m.offset = 0
			return m, nil
		}
		return m.closePopup(false)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtered = nil
		m.cursor = 0
		m.offset = 0
		return m, nil
	case "enter":
		// Keep the filter applied but hand keys back to the list.
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.filtered = m.Box.FilterOptions(m.filter.Value())
	m.cursor = 0
	m.offset = 0
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxVisible() {
		m.offset = m.cursor - m.maxVisible() + 1
	}
}

func (m Model) toggleAtCursor() (Model, tea.Cmd) {
	rows := m.rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return m, nil
	}
	r := rows[m.cursor]
	if r.selectAll {
		m.Box.ToggleSelectAll()
		return m, m.sync()
	}
	handled := m.Box.ToggleInteractive(r.option)
	if handled && m.CloseOnSelect {
		return m.closePopup(true)
	}
	return m, m.sync()
}

// closePopup hides the popup. withGuard schedules the short-lived reopen
// guard used by close-on-select so the same interaction cannot immediately
// reopen the popup.
func (m Model) closePopup(withGuard bool) (Model, tea.Cmd) {
	m.open = false
	m.filtering = false
	m.filter.SetValue("")
	m.filter.Blur()
	m.filtered = nil
	m.cursor = 0
	m.offset = 0

	// Closing is a flush point: settle the coalescer before reporting.
	values := m.Box.CurrentValues()
	cmds := []tea.Cmd{
		m.drain(),
		func() tea.Msg { return PopupClosedMsg{Values: values} },
	}
	if withGuard {
		m.guard = true
		m.guardGen++
		gen := m.guardGen
		cmds = append(cmds, func() tea.Msg { return guardExpiredMsg{gen: gen} })
	}
	return m, tea.Batch(cmds...)
}

// sync drains queued notifications and, when a recompute is pending,
// schedules the deferred flush through the event loop.
func (m Model) sync() tea.Cmd {
	cmds := []tea.Cmd{m.drain()}
	if m.Box.HasPendingUpdate() {
		cmds = append(cmds, func() tea.Msg { return flushMsg{} })
	}
	return tea.Batch(cmds...)
}

// drain re-emits notifications collected from the combo box as messages.
func (m Model) drain() tea.Cmd {
	msgs := m.queue.take()
	if len(msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Batch(cmds...)
}
