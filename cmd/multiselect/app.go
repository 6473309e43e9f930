package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"multiselect/widget"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	limitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// app hosts the widget in a standalone Bubble Tea program and shows the
// notifications it raises.
type app struct {
	name      string
	combo     widget.Model
	logger    *log.Logger
	last      []any
	limitHits int
}

func newApp(name string, combo widget.Model, logger *log.Logger) app {
	return app{name: name, combo: combo, logger: logger}
}

func runApp(a app) error {
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a app) Init() tea.Cmd {
	return a.combo.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && !a.combo.IsOpen() {
			return a, tea.Quit
		}

	case widget.SelectionChangedMsg:
		a.last = msg.Values
		a.logger.Info("selection changed", "values", msg.Values)

	case widget.LimitReachedMsg:
		a.limitHits++
		a.logger.Warn("selection limit reached", "limit", msg.Limit)

	case widget.PopupClosedMsg:
		a.logger.Info("popup closed", "values", msg.Values)
	}

	var cmd tea.Cmd
	a.combo, cmd = a.combo.Update(msg)
	return a, cmd
}

func (a app) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("multiselect · " + a.name))
	b.WriteString("\n")
	b.WriteString(a.combo.View())
	b.WriteString("\n\n")
	b.WriteString(valueStyle.Render(fmt.Sprintf("selection: %v", a.last)))
	if a.limitHits > 0 {
		b.WriteString("\n")
		b.WriteString(limitStyle.Render(fmt.Sprintf("limit reached %d time(s)", a.limitHits)))
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter/space opens the popup · q quits"))
	return b.String()
}
