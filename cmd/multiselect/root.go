package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"multiselect"
	"multiselect/internal/config"
	"multiselect/widget"
)

type rootOptions struct {
	configPath string
	logPath    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "multiselect",
		Short:        "Demos for the multiselect combo box widget",
		Long:         "Interactive demos showing the multiselect combo box widget in different configurations.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config describing the combo box")
	cmd.PersistentFlags().StringVar(&opts.logPath, "log-file", "multiselect-demo.log", "file receiving demo logs")

	cmd.AddCommand(
		newDemoCmd(opts, "basic", "Plain multi-select over a small option list", setupBasic),
		newDemoCmd(opts, "selectall", "Select-all pseudo-option with tri-state checkbox", setupSelectAll),
		newDemoCmd(opts, "maxselection", "Selection capped at two options", setupMaxSelection),
		newDemoCmd(opts, "summary", "Count summarization of the field text", setupSummary),
		newDemoCmd(opts, "leading", "Leading summarization with a +N more suffix", setupLeading),
		newDemoCmd(opts, "batch", "Options loaded inside one bulk update", setupBatch),
		newDemoCmd(opts, "filter", "Large option list with in-popup fuzzy filter", setupFilter),
		newDemoCmd(opts, "closeonselect", "Popup closes after each toggle", setupCloseOnSelect),
		newDocsCmd(),
	)
	return cmd
}

// newLogger opens the demo log file. TUI programs own the terminal, so
// logs never go to stderr while the program runs.
func newLogger(path string) (*log.Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "multiselect",
		ReportTimestamp: true,
	})
	return logger, func() { _ = f.Close() }, nil
}

// buildWidget creates the widget for a demo: from the --config file when
// given, otherwise from the scenario setup.
func buildWidget(opts *rootOptions, setup func(*multiselect.ComboBox) bool) (widget.Model, error) {
	box := multiselect.New()
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return widget.Model{}, err
		}
		if err := cfg.Apply(box); err != nil {
			return widget.Model{}, err
		}
		w := widget.New(box)
		w.CloseOnSelect = cfg.CloseOnSelect
		w.Styles = cfg.Styles()
		return w, nil
	}
	closeOnSelect := setup(box)
	w := widget.New(box)
	w.CloseOnSelect = closeOnSelect
	return w, nil
}

func newDemoCmd(opts *rootOptions, name, short string, setup func(*multiselect.ComboBox) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(opts.logPath)
			if err != nil {
				return err
			}
			defer closeLog()

			w, err := buildWidget(opts, setup)
			if err != nil {
				logger.Error("demo setup failed", "demo", name, "err", err)
				return err
			}
			logger.Info("starting demo", "demo", name, "options", w.Box.OptionCount())
			return runApp(newApp(name, w, logger))
		},
	}
}
