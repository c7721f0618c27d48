package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// Run shows the picker on out until the session closes and returns what
// it produced. The session is cancelled if the program stops first.
func Run(ctx context.Context, session *picker.Session, presenter *Presenter, in io.Reader, out *os.File) (Result, error) {
	lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())

	model := New(ctx, session, presenter)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if m, ok := final.(*Model); ok {
		model = m
	}
	if session.State() == picker.StateOpen {
		_ = session.Cancel()
	}
	return model.Result(), err
}
