package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = keyRunes(" ")
)

func newWidget(texts ...string) Model {
	box := multiselect.New()
	for _, t := range texts {
		box.AddOption(t, nil)
	}
	box.Flush()
	return New(box)
}

// collect runs a command tree and flattens the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump delivers msg and keeps feeding internal messages back into the model
// the way the event loop would, returning the outward-facing messages.
func pump(m Model, msg tea.Msg) (Model, []tea.Msg) {
	var out []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		var cmd tea.Cmd
		m, cmd = m.Update(next)
		for _, produced := range collect(cmd) {
			switch produced.(type) {
			case flushMsg, guardExpiredMsg:
				queue = append(queue, produced)
			default:
				out = append(out, produced)
			}
		}
	}
	return m, out
}

func TestOpenAndClose(t *testing.T) {
	m := newWidget("Red", "Blue")
	require.False(t, m.IsOpen())

	m, _ = pump(m, keyEnter)
	assert.True(t, m.IsOpen())
	assert.Equal(t, 0, m.Cursor())

	m, msgs := pump(m, keyEsc)
	assert.False(t, m.IsOpen())
	require.Len(t, msgs, 1)
	closed, ok := msgs[0].(PopupClosedMsg)
	require.True(t, ok)
	assert.Empty(t, closed.Values)
}

func TestToggleEmitsSelectionChanged(t *testing.T) {
	m := newWidget("Red", "Blue")
	m, _ = pump(m, keyEnter)

	m, msgs := pump(m, keySpace)
	require.Len(t, msgs, 1)
	changed, ok := msgs[0].(SelectionChangedMsg)
	require.True(t, ok)
	assert.Equal(t, []any{"Red"}, changed.Values)
	assert.True(t, m.Box.IsOptionChecked(0))

	m, msgs = pump(m, keySpace)
	require.Len(t, msgs, 1)
	changed = msgs[0].(SelectionChangedMsg)
	assert.Empty(t, changed.Values)
	_ = m
}

func TestCursorNavigationClampsAndScrolls(t *testing.T) {
	m := newWidget("a", "b", "c", "d")
	m.MaxVisible = 2
	m, _ = pump(m, keyEnter)

	for i := 0; i < 10; i++ {
		m, _ = pump(m, keyDown)
	}
	assert.Equal(t, 3, m.Cursor(), "cursor clamps at the last row")
	assert.Equal(t, 2, m.offset, "window follows the cursor")

	for i := 0; i < 10; i++ {
		m, _ = pump(m, keyUp)
	}
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, 0, m.offset)
}

func TestSelectAllRow(t *testing.T) {
	m := newWidget("a", "b", "c")
	m.Box.SetSelectAllEnabled(true)
	m, _ = pump(m, keyEnter)

	require.Len(t, m.rows(), 4, "select-all row precedes the options")
	assert.True(t, m.rows()[0].selectAll)

	m, _ = pump(m, keySpace)
	assert.Equal(t, 3, m.Box.CheckedCount())
	assert.Equal(t, multiselect.Checked, m.Box.SelectAllState())

	m, _ = pump(m, keySpace)
	assert.Equal(t, 0, m.Box.CheckedCount())
}

func TestSelectAllClearInvertKeys(t *testing.T) {
	m := newWidget("a", "b", "c")
	m, _ = pump(m, keyEnter)

	m, _ = pump(m, keyRunes("a"))
	assert.Equal(t, []int{0, 1, 2}, m.Box.CheckedIndexes())

	m, _ = pump(m, keyRunes("i"))
	assert.Empty(t, m.Box.CheckedIndexes())

	m, _ = pump(m, keyDown)
	m, _ = pump(m, keySpace)
	m, _ = pump(m, keyRunes("i"))
	assert.Equal(t, []int{0, 2}, m.Box.CheckedIndexes())

	m, _ = pump(m, keyRunes("A"))
	assert.Empty(t, m.Box.CheckedIndexes())
}

func TestFilterNarrowsAndRanks(t *testing.T) {
	m := newWidget("Cherry", "Berry", "Grape")
	m.Box.SetSelectAllEnabled(true)
	m, _ = pump(m, keyEnter)

	m, _ = pump(m, keyRunes("/"))
	assert.True(t, m.filtering)

	for _, r := range "erry" {
		m, _ = pump(m, keyRunes(string(r)))
	}
	assert.Equal(t, "erry", m.FilterValue())
	rows := m.rows()
	require.Len(t, rows, 2)
	assert.False(t, rows[0].selectAll, "the select-all row hides while filtering")
	assert.Equal(t, 1, rows[0].option, "closest match ranks first")
	assert.Equal(t, 0, rows[1].option)

	// Enter keeps the filter and hands keys back to the list.
	m, _ = pump(m, keyEnter)
	m, _ = pump(m, keySpace)
	assert.True(t, m.Box.IsOptionChecked(1))

	m, _ = pump(m, keyEsc)
	assert.True(t, m.IsOpen(), "first esc only clears the filter")
	assert.Equal(t, "", m.FilterValue())
	assert.Len(t, m.rows(), 4)
}

func TestFilterEscWhileTyping(t *testing.T) {
	m := newWidget("Cherry", "Berry")
	m, _ = pump(m, keyEnter)
	m, _ = pump(m, keyRunes("/"))
	m, _ = pump(m, keyRunes("x"))

	m, _ = pump(m, keyEsc)
	assert.False(t, m.filtering)
	assert.Equal(t, "", m.FilterValue())
	assert.True(t, m.IsOpen())
}

func TestCloseOnSelectGuard(t *testing.T) {
	m := newWidget("Red", "Blue")
	m.CloseOnSelect = true
	m, _ = pump(m, keyEnter)

	m, cmd := m.Update(keySpace)
	assert.False(t, m.IsOpen(), "toggling closes the popup")

	msgs := collect(cmd)
	var guardMsg tea.Msg
	var sawClosed bool
	for _, msg := range msgs {
		switch v := msg.(type) {
		case PopupClosedMsg:
			sawClosed = true
			assert.Equal(t, []any{"Red"}, v.Values)
		case guardExpiredMsg:
			guardMsg = v
		}
	}
	assert.True(t, sawClosed)
	require.NotNil(t, guardMsg, "close-on-select schedules the reopen guard")

	// The keypress that closed the popup is swallowed once.
	m, _ = m.Update(keySpace)
	assert.False(t, m.IsOpen())
	m, _ = m.Update(keySpace)
	assert.True(t, m.IsOpen(), "the guard is spent after one swallow")
}

func TestGuardExpiresQuietly(t *testing.T) {
	m := newWidget("Red")
	m.CloseOnSelect = true
	m, _ = pump(m, keyEnter)

	m, cmd := m.Update(keySpace)
	require.False(t, m.IsOpen())

	for _, msg := range collect(cmd) {
		if g, ok := msg.(guardExpiredMsg); ok {
			m, _ = m.Update(g)
		}
	}
	m, _ = m.Update(keyEnter)
	assert.True(t, m.IsOpen(), "an expired guard no longer swallows the open key")
}

func TestViewClosedField(t *testing.T) {
	m := newWidget("Red", "Green", "Blue")
	m.Box.SetCheckedIndexes([]int{0, 2})
	m.Box.Flush()

	out := m.View()
	assert.Contains(t, out, "Red, Blue")
	assert.Contains(t, out, "▾")
	assert.NotContains(t, out, "[x]", "the popup is hidden while closed")
}

func TestViewPlaceholder(t *testing.T) {
	m := newWidget("Red")
	m.Box.SetPlaceholderText("pick colors")

	assert.Contains(t, m.View(), "pick colors")
}

func TestViewPopupRowsAndStatus(t *testing.T) {
	m := newWidget("Red", "Green", "Blue")
	m.Box.SetMaxSelectionCount(2)
	m, _ = pump(m, keyEnter)
	m, _ = pump(m, keySpace)
	m, _ = pump(m, keyDown)
	m, _ = pump(m, keySpace)

	out := m.View()
	assert.Contains(t, out, "[x] Red")
	assert.Contains(t, out, "[x] Green")
	assert.Contains(t, out, "[ ] Blue")
	assert.Contains(t, out, "2/3 selected")
	assert.Contains(t, out, "max 2")
}

func TestViewSelectAllTriState(t *testing.T) {
	m := newWidget("a", "b")
	m.Box.SetSelectAllEnabled(true)
	m.Box.SetSelectAllText("Everything")
	m, _ = pump(m, keyEnter)

	assert.Contains(t, m.View(), "[ ] Everything")

	m.Box.ToggleOption(0)
	m.Box.Flush()
	assert.Contains(t, m.View(), "[~] Everything")

	m.Box.ToggleOption(1)
	m.Box.Flush()
	assert.Contains(t, m.View(), "[x] Everything")
}

func TestViewScrollIndicators(t *testing.T) {
	m := newWidget("a", "b", "c", "d", "e")
	m.MaxVisible = 2
	m, _ = pump(m, keyEnter)

	out := m.View()
	assert.Contains(t, out, "↓")
	assert.NotContains(t, out, "↑")

	for i := 0; i < 4; i++ {
		m, _ = pump(m, keyDown)
	}
	out = m.View()
	assert.Contains(t, out, "↑")
	assert.NotContains(t, out, "↓")
}

func TestViewEmptyPopup(t *testing.T) {
	m := newWidget()
	m, _ = pump(m, keyEnter)

	assert.Contains(t, m.View(), "(no options)")
	m, cmd := m.Update(keySpace)
	assert.Nil(t, cmd, "toggling an empty list is a no-op")
	_ = m
}

func TestLimitReachedMessage(t *testing.T) {
	m := newWidget("Red", "Blue")
	m.Box.SetMaxSelectionCount(1)
	m, _ = pump(m, keyEnter)
	m, _ = pump(m, keySpace)
	m, _ = pump(m, keyDown)

	m, msgs := pump(m, keySpace)
	require.Len(t, msgs, 1)
	limit, ok := msgs[0].(LimitReachedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, limit.Limit)
	assert.False(t, m.Box.IsOptionChecked(1))
}

func TestDetachStopsNotifications(t *testing.T) {
	box := multiselect.New()
	box.AddOption("Red", nil)
	box.Flush()

	old := New(box)
	old.Detach()
	m := New(box)

	m, _ = pump(m, keyEnter)
	m, msgs := pump(m, keySpace)
	require.Len(t, msgs, 1, "the live widget still receives notifications")
	assert.IsType(t, SelectionChangedMsg{}, msgs[0])
	assert.Empty(t, old.queue.take(), "a detached widget receives nothing")
}

func TestWindowSizeShrinksWidth(t *testing.T) {
	m := newWidget("a")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, 30, m.Width)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	assert.Equal(t, 30, m.Width, "the widget never grows past its configured width")
}

func TestDisabledOptionRefusesToggle(t *testing.T) {
	m := newWidget("Red", "Blue")
	m.Box.SetOptionEnabled(0, false)
	m, _ = pump(m, keyEnter)

	m, msgs := pump(m, keySpace)
	assert.Empty(t, msgs)
	assert.False(t, m.Box.IsOptionChecked(0))
	assert.True(t, strings.Contains(m.View(), "Red"))
}
