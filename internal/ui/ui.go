package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"reel/internal/backend"
	"reel/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Client    *backend.Client
	Images    *backend.ImageResolver
	Store     *state.Store
	ThemeName string
	PrefsPath string
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.Client == nil {
		return fmt.Errorf("ui requires a backend client")
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	program := tea.NewProgram(newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context.Err() != nil {
		// Cancellation via signal is a normal exit.
		return nil
	}
	return err
}
