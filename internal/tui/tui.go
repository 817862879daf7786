// Package tui renders the drop panels and the command log in the terminal.
package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/bgdrop/internal/platform"
	"github.com/1broseidon/bgdrop/internal/session"
)

// TUI runs the interactive panel view for a fixed set of displays.
type TUI struct {
	displays []platform.Display
	session  *session.Session
}

// New creates a TUI. displays must be the arranged list the session was built from.
func New(displays []platform.Display, s *session.Session) *TUI {
	return &TUI{displays: displays, session: s}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bgdrop requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(
		newModel(t.displays, t.session),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
