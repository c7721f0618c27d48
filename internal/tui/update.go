package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgClearToast:
		if m.toast != nil && m.toast.Seq == msg.Seq {
			m.toast = nil
		}
		return m, nil
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeQuery:
		return m.handleQueryMode(msg)
	case ModeActionMenu:
		return m.handleActionMenuMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// after collects the effects of a session operation and quits once the
// session has closed.
func (m *Model) after(err error) (tea.Model, tea.Cmd) {
	seq := m.toastSeq
	if err != nil && !errors.Is(err, picker.ErrSessionClosed) {
		m.showToast(picker.LevelError, err.Error())
	}
	m.collect()
	if m.closed() {
		return m, tea.Quit
	}
	if m.toastSeq != seq {
		return m, m.clearToastAfter()
	}
	return m, nil
}

// handleQueryMode handles keys while typing a query.
func (m *Model) handleQueryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.after(m.session.Cancel())

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.after(m.session.Prev())

	case key.Matches(msg, m.keys.Down):
		return m.after(m.session.Next())

	case key.Matches(msg, m.keys.First):
		return m.after(m.session.First())

	case key.Matches(msg, m.keys.Last):
		return m.after(m.session.Last())

	case key.Matches(msg, m.keys.NextSource):
		return m.after(m.session.NextSource())

	case key.Matches(msg, m.keys.PrevSource):
		return m.after(m.session.PrevSource())

	case key.Matches(msg, m.keys.Mark):
		if err := m.session.ToggleMark(); err != nil {
			return m.after(err)
		}
		return m.after(m.session.Next())

	case key.Matches(msg, m.keys.MarkAll):
		return m.after(m.session.MarkAll())

	case key.Matches(msg, m.keys.UnmarkAll):
		return m.after(m.session.UnmarkAll())

	case key.Matches(msg, m.keys.Accept):
		return m.after(m.session.Accept(m.ctx))

	case key.Matches(msg, m.keys.Preview):
		return m.after(m.session.Preview(m.ctx))

	case key.Matches(msg, m.keys.Actions):
		return m.openActionMenu()

	case key.Matches(msg, m.keys.ScrollUp):
		m.preview.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.preview.HalfPageDown()
		return m, nil
	}

	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() == before {
		return m, cmd
	}
	_, next := m.after(m.session.SetQuery(m.query.Value()))
	return m, tea.Batch(cmd, next)
}

func (m *Model) openActionMenu() (tea.Model, tea.Cmd) {
	labels := m.session.Actions()
	if len(labels) == 0 {
		return m, nil
	}
	m.menuLabels = labels
	m.menuCursor = 0
	m.mode = ModeActionMenu
	return m, nil
}

func (m *Model) closeActionMenu() {
	m.mode = ModeQuery
	m.menuLabels = nil
	m.menuCursor = 0
}

// handleActionMenuMode handles keys while the action menu is shown.
// Digits 1-9 run the corresponding entry directly.
func (m *Model) handleActionMenuMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeActionMenu()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(m.menuLabels)-1 {
			m.menuCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		return m.runMenuEntry(m.menuCursor)

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		r := msg.Runes[0]
		if r >= '1' && r <= '9' {
			return m.runMenuEntry(int(r - '1'))
		}
	}
	return m, nil
}

func (m *Model) runMenuEntry(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.menuLabels) {
		return m, nil
	}
	label := m.menuLabels[i]
	m.closeActionMenu()
	return m.after(m.session.Execute(m.ctx, label))
}

// handleHelpMode returns to the query on help, cancel or enter.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Accept) {
		m.mode = ModeQuery
	}
	return m, nil
}
