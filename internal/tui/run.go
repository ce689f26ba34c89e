package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/gstcalc/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive calculator for sess and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, opts ...Option) error {
	if sess == nil {
		return fmt.Errorf("session is required")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := newModel(ctx, sess, cfg)
	defer m.shutdown()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
