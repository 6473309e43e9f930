package widget

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the combo box widget.
type Styles struct {
	Field            lipgloss.Style
	FieldFocused     lipgloss.Style
	Placeholder      lipgloss.Style
	Indicator        lipgloss.Style
	Popup            lipgloss.Style
	Row              lipgloss.Style
	RowCursor        lipgloss.Style
	RowDisabled      lipgloss.Style
	CheckboxChecked  lipgloss.Style
	CheckboxPartial  lipgloss.Style
	SelectAllRow     lipgloss.Style
	FilterPrompt     lipgloss.Style
	Status           lipgloss.Style
	StatusLimit      lipgloss.Style
	Help             lipgloss.Style
}

// DefaultStyles creates a new Styles instance with default values.
func DefaultStyles() *Styles {
	return &Styles{
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Row:             lipgloss.NewStyle(),
		RowCursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		RowDisabled:     lipgloss.NewStyle().Faint(true),
		CheckboxChecked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		CheckboxPartial: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SelectAllRow:    lipgloss.NewStyle().Bold(true),
		FilterPrompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusLimit:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:            lipgloss.NewStyle().Faint(true),
	}
}
