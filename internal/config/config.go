// Package config loads combo box setups from TOML files, used by the demo
// programs and handy for applications that ship canned option lists.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"multiselect"
	"multiselect/widget"
)

// Summary configures summarization of the display text.
type Summary struct {
	Mode      string `toml:"mode"` // "", "count" or "leading"
	Threshold int    `toml:"threshold"`
	Format    string `toml:"format"`
}

// Theme overrides the widget's default colors. Values are ANSI-256 numbers
// or hex strings; empty values keep the default.
type Theme struct {
	Accent  string `toml:"accent"`
	Checked string `toml:"checked"`
	Partial string `toml:"partial"`
	Muted   string `toml:"muted"`
	Limit   string `toml:"limit"`
}

// OptionEntry is one option row in the config file.
type OptionEntry struct {
	Text    string `toml:"text"`
	Value   string `toml:"value"`
	Enabled *bool  `toml:"enabled"`
	Checked bool   `toml:"checked"`
}

// Config describes a combo box setup.
type Config struct {
	Placeholder   string        `toml:"placeholder"`
	Delimiter     string        `toml:"delimiter"`
	SpaceBefore   bool          `toml:"space_before"`
	SpaceAfter    bool          `toml:"space_after"`
	DisplayType   string        `toml:"display_type"`
	OutputType    string        `toml:"output_type"`
	MaxSelection  int           `toml:"max_selection"`
	SelectAll     bool          `toml:"select_all"`
	SelectAllText string        `toml:"select_all_text"`
	Duplicates    *bool         `toml:"duplicates"`
	CloseOnSelect bool          `toml:"close_on_select"`
	Summary       Summary       `toml:"summary"`
	Theme         Theme         `toml:"theme"`
	Options       []OptionEntry `toml:"options"`
}

// Default returns the configuration matching the combo box defaults.
func Default() *Config {
	return &Config{
		Delimiter:   ",",
		SpaceAfter:  true,
		DisplayType: "value",
		OutputType:  "value",
	}
}

// Load reads a TOML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Apply configures the combo box from the config. Options are added inside
// one bulk window so the box recomputes once.
func (c *Config) Apply(box *multiselect.ComboBox) error {
	displayType, err := multiselect.ParseType(c.DisplayType)
	if err != nil {
		return fmt.Errorf("display_type: %w", err)
	}
	outputType, err := multiselect.ParseType(c.OutputType)
	if err != nil {
		return fmt.Errorf("output_type: %w", err)
	}
	if err := box.SetDisplayType(displayType); err != nil {
		return err
	}
	if err := box.SetOutputType(outputType); err != nil {
		return err
	}

	var opts []multiselect.DelimiterOption
	if c.SpaceBefore {
		opts = append(opts, multiselect.SpaceBefore())
	}
	if c.SpaceAfter {
		opts = append(opts, multiselect.SpaceAfter())
	}
	box.SetDisplayDelimiter(c.Delimiter, opts...)
	box.SetPlaceholderText(c.Placeholder)
	if c.Duplicates != nil {
		box.SetDuplicatesEnabled(*c.Duplicates)
	}
	box.SetSelectAllEnabled(c.SelectAll)
	box.SetSelectAllText(c.SelectAllText)
	box.SetMaxSelectionCount(c.MaxSelection)

	switch c.Summary.Mode {
	case "":
		box.ClearSummary()
	case "count":
		if err := box.SetCountSummary(c.Summary.Threshold, c.Summary.Format); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	case "leading":
		if err := box.SetLeadingSummary(c.Summary.Threshold, c.Summary.Format); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	default:
		return fmt.Errorf("summary mode must be \"count\" or \"leading\", got %q", c.Summary.Mode)
	}

	box.BeginUpdate()
	var checked []int
	for _, entry := range c.Options {
		var value any
		if entry.Value != "" {
			value = entry.Value
		}
		if !box.AddOption(entry.Text, value) {
			continue
		}
		i := box.OptionCount() - 1
		if entry.Enabled != nil && !*entry.Enabled {
			box.SetOptionEnabled(i, false)
		}
		if entry.Checked {
			checked = append(checked, i)
		}
	}
	if len(checked) > 0 {
		box.SetCheckedIndexes(checked)
	}
	box.EndUpdate()
	return nil
}

// Styles builds the widget styles described by the theme on top of the
// defaults.
func (c *Config) Styles() *widget.Styles {
	s := widget.DefaultStyles()
	if c.Theme.Accent != "" {
		accent := lipgloss.Color(c.Theme.Accent)
		s.FieldFocused = s.FieldFocused.BorderForeground(accent)
		s.RowCursor = s.RowCursor.Foreground(accent)
		s.FilterPrompt = s.FilterPrompt.Foreground(accent)
	}
	if c.Theme.Checked != "" {
		s.CheckboxChecked = s.CheckboxChecked.Foreground(lipgloss.Color(c.Theme.Checked))
	}
	if c.Theme.Partial != "" {
		s.CheckboxPartial = s.CheckboxPartial.Foreground(lipgloss.Color(c.Theme.Partial))
	}
	if c.Theme.Muted != "" {
		muted := lipgloss.Color(c.Theme.Muted)
		s.Field = s.Field.BorderForeground(muted)
		s.Popup = s.Popup.BorderForeground(muted)
		s.Indicator = s.Indicator.Foreground(muted)
		s.Status = s.Status.Foreground(muted)
	}
	if c.Theme.Limit != "" {
		s.StatusLimit = s.StatusLimit.Foreground(lipgloss.Color(c.Theme.Limit))
	}
	return s
}
