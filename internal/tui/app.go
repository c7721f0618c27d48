package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// Result is what the picker produced once it exits.
type Result struct {
	Outcome       *picker.Outcome // nil when cancelled before any dispatch
	Helps         []Help          // Help from non-persistent describe actions
	Locations     []domain.Location
	Notifications []picker.Notification
}

// Model is the bubbletea model around one picker session.
type Model struct {
	// Dependencies (pointers first for alignment)
	ctx       context.Context
	session   *picker.Session
	presenter *Presenter
	toast     *Toast

	// Collected output
	result Result

	// Components
	keys    KeyMap
	styles  Styles
	help    help.Model
	query   textinput.Model
	preview viewport.Model

	// Action menu
	menuLabels []string

	// Preview pane title; empty while no help is shown
	previewTitle string

	// Numeric state (smaller types last)
	mode       Mode
	menuCursor int
	toastSeq   int
	width      int
	height     int
}

// New creates a Model for an open session. presenter must be the one the
// session's actions report through.
func New(ctx context.Context, session *picker.Session, presenter *Presenter) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type to filter modes..."
	ti.CharLimit = 200
	ti.SetValue(session.Query())
	ti.Focus()

	m := &Model{
		ctx:       ctx,
		session:   session,
		presenter: presenter,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		query:     ti,
		preview:   viewport.New(0, 0),
		mode:      ModeQuery,
	}
	m.collect()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.toast != nil {
		cmds = append(cmds, m.clearToastAfter())
	}
	return tea.Batch(cmds...)
}

// Result returns the collected output. It is complete once the program
// has exited.
func (m *Model) Result() Result {
	res := m.result
	res.Outcome = m.session.Outcome()
	return res
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// collect drains notifications and presenter output after every session
// operation. Help produced while the session stays open fills the preview
// pane, one section per described row.
func (m *Model) collect() {
	if notes := m.session.Notifications(); len(notes) > 0 {
		m.result.Notifications = append(m.result.Notifications, notes...)
		last := notes[len(notes)-1]
		m.showToast(last.Level, last.Message)
	}

	helps, locs := m.presenter.drain()
	m.result.Locations = append(m.result.Locations, locs...)
	if len(helps) == 0 {
		return
	}
	if m.session.State() == picker.StateOpen {
		title, body := previewContent(helps)
		m.previewTitle = title
		m.preview.SetContent(body)
		m.preview.GotoTop()
		m.updateLayoutSizes()
		return
	}
	m.result.Helps = append(m.result.Helps, helps...)
}

// closed reports whether the session has ended.
func (m *Model) closed() bool {
	return m.session.State() == picker.StateClosed
}

// previewContent joins helps into one preview. Several helps are stacked
// under their own titles.
func previewContent(helps []Help) (string, string) {
	if len(helps) == 1 {
		return helps[0].Title, helps[0].Body
	}
	sections := make([]string, len(helps))
	for i, h := range helps {
		sections[i] = h.Title + "\n" + strings.Repeat("─", runewidth.StringWidth(h.Title)) + "\n" + h.Body
	}
	title := fmt.Sprintf("%s (+%d more)", helps[0].Title, len(helps)-1)
	return title, strings.Join(sections, "\n\n")
}
