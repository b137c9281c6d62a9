// Package tui implements the interactive terminal UI.
//
// The UI has three tabs (Tasks, Calendar, Settings). Every gesture runs one
// store call inside a tea.Cmd and redraws from the list the call returns.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/service"
)

// Run starts the UI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, svc service.Service, cfg *config.Config, in io.Reader, out io.Writer) error {
	m := New(ctx, svc, cfg, lipgloss.NewRenderer(out))
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
