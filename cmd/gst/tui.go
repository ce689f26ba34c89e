package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/tui"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return common.NewUserError("the interactive calculator needs a terminal; use 'gst calc' or 'gst batch' instead", common.ErrNotTerminal)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logOut := io.Discard
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "gst")
		if err != nil {
			return common.NewUserError(fmt.Sprintf("failed to open log file %s", a.cfg.LogFile), err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	level, err := common.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if err := common.SetupLogger(logOut, level, a.cfg.LogFormat); err != nil {
		return err
	}

	sess, err := a.newSession(cmd.Context())
	if err != nil {
		return err
	}
	defer closeSession(sess)

	return tui.Run(cmd.Context(), sess, a.tuiOptions()...)
}

// tuiOptions combines the ui.* settings with the root command's flags.
func (a *app) tuiOptions() []tui.Option {
	return []tui.Option{
		tui.WithTheme(themes.GetTheme(a.cfg.Theme)),
		tui.WithAltScreen(a.cfg.AltScreen && !a.noAltScreen),
		tui.WithHelpBar(a.cfg.HelpBar && !a.noHelpBar),
	}
}
