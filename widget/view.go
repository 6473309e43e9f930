package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"multiselect"
)

const (
	glyphChecked   = "[x]"
	glyphPartial   = "[~]"
	glyphUnchecked = "[ ]"
)

// View renders the widget: the field line, plus the popup when open.
func (m Model) View() string {
	field := m.viewField()
	if !m.open {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, m.viewPopup())
}

// viewField renders the closed line-edit area: the summary text (or the
// placeholder), elided to the widget width, with a dropdown indicator.
func (m Model) viewField() string {
	style := m.Styles.Field
	if m.open {
		style = m.Styles.FieldFocused
	}
	// Border and padding take two cells each side; the indicator two more.
	inner := m.Width - 4
	if inner < 4 {
		inner = 4
	}
	text := m.Box.CurrentText()
	if m.Box.CheckedCount() == 0 {
		text = m.Styles.Placeholder.Render(text)
	}
	// Elision is pure rendering; CurrentText stays unelided.
	text = ansi.Truncate(text, inner-2, "…")
	gap := inner - 2 - ansi.StringWidth(text)
	if gap < 0 {
		gap = 0
	}
	line := text + strings.Repeat(" ", gap) + " " + m.Styles.Indicator.Render("▾")
	return style.Render(line)
}

// viewPopup renders the dropdown: filter line, visible rows, status line
// and help.
func (m Model) viewPopup() string {
	var b strings.Builder

	if m.hasFilter() {
		b.WriteString(m.Styles.FilterPrompt.Render(m.filter.View()))
		b.WriteString("\n")
	}

	rows := m.rows()
	start := m.offset
	if start > len(rows) {
		start = len(rows)
	}
	end := start + m.maxVisible()
	if end > len(rows) {
		end = len(rows)
	}

	if start > 0 {
		b.WriteString(m.Styles.Status.Render("  ↑"))
		b.WriteString("\n")
	}
	for ri := start; ri < end; ri++ {
		b.WriteString(m.viewRow(rows[ri], ri == m.cursor))
		b.WriteString("\n")
	}
	if len(rows) == 0 {
		b.WriteString(m.Styles.Status.Render("  (no options)"))
		b.WriteString("\n")
	}
	if end < len(rows) {
		b.WriteString(m.Styles.Status.Render("  ↓"))
		b.WriteString("\n")
	}

	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.Styles.Help.Render(m.help.View(m.Keys)))

	inner := m.Width - 4
	if inner < 4 {
		inner = 4
	}
	return m.Styles.Popup.Width(inner + 2).Render(b.String())
}

func (m Model) viewRow(r row, atCursor bool) string {
	var glyph, label string
	if r.selectAll {
		switch m.Box.SelectAllState() {
		case multiselect.Checked:
			glyph = m.Styles.CheckboxChecked.Render(glyphChecked)
		case multiselect.Partial:
			glyph = m.Styles.CheckboxPartial.Render(glyphPartial)
		default:
			glyph = glyphUnchecked
		}
		label = m.Styles.SelectAllRow.Render(m.Box.SelectAllText())
	} else {
		opt, ok := m.Box.OptionAt(r.option)
		if !ok {
			return ""
		}
		if opt.Checked {
			glyph = m.Styles.CheckboxChecked.Render(glyphChecked)
		} else {
			glyph = glyphUnchecked
		}
		label = m.Styles.Row.Render(opt.Text)
		if !opt.Enabled {
			label = m.Styles.RowDisabled.Render(opt.Text)
		}
	}

	prefix := "  "
	if atCursor {
		prefix = m.Styles.RowCursor.Render("> ")
	}
	line := prefix + glyph + " " + label
	return ansi.Truncate(line, m.Width-4, "…")
}

func (m Model) viewStatus() string {
	status := fmt.Sprintf("%d/%d selected", m.Box.CheckedCount(), m.Box.OptionCount())
	limit := m.Box.MaxSelectionCount()
	if limit <= 0 {
		return m.Styles.Status.Render(status)
	}
	status += fmt.Sprintf(" · max %d", limit)
	if m.Box.CheckedCount() >= limit {
		return m.Styles.StatusLimit.Render(status)
	}
	return m.Styles.Status.Render(status)
}
