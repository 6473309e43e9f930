package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
	"github.com/spf13/cobra"
)

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Browse the widget documentation in a pager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsPager(renderDocs())
		},
	}
}

// renderDocs generates the keybinding and behavior documentation.
func renderDocs() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var docs strings.Builder

	docs.WriteString(titleStyle.Render("Multiselect Combo Box"))
	docs.WriteString("\n")

	docs.WriteString(sectionStyle.Render("Field"))
	docs.WriteString("\n")
	docs.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("enter/space"), descStyle.Render("Open the popup")))
	docs.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("q"), descStyle.Render("Quit the demo")))
	docs.WriteString("\n")

	docs.WriteString(sectionStyle.Render("Popup"))
	docs.WriteString("\n")
	docs.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move the cursor")))
	docs.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("enter/space"), descStyle.Render("Toggle the row under the cursor")))
	docs.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("a"), descStyle.Render("Select all (up to the limit)")))
	docs.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("A"), descStyle.Render("Clear the selection")))
	docs.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("i"), descStyle.Render("Invert the selection")))
	docs.WriteString(fmt.Sprintf("  %s            %s\n", keyStyle.Render("/"), descStyle.Render("Filter options")))
	docs.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("esc/tab"), descStyle.Render("Close the popup")))
	docs.WriteString("\n")

	docs.WriteString(sectionStyle.Render("Behavior"))
	docs.WriteString("\n")
	docs.WriteString(descStyle.Render("  The field shows the checked options joined by the configured\n"))
	docs.WriteString(descStyle.Render("  delimiter, or a summarized form when summarization is enabled.\n"))
	docs.WriteString(descStyle.Render("  Disabled rows are dimmed and refuse toggles. With a max selection\n"))
	docs.WriteString(descStyle.Render("  count, checking past the limit is skipped and an advisory shown.\n"))
	docs.WriteString(descStyle.Render("  The select-all row derives its checkbox from the real options:\n"))
	docs.WriteString(descStyle.Render("  empty, partial [~] or checked [x].\n"))

	return docs.String()
}

// runDocsPager shows the documentation in an ov pager.
func runDocsPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Keep ov from writing the document back to the terminal on exit.
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
