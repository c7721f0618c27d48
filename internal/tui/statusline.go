package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// toastDuration is how long a notification stays in the status line.
const toastDuration = 4 * time.Second

// Toast is a transient notification shown in the status line.
type Toast struct {
	Message string
	Level   picker.Level
	Seq     int
}

func (m *Model) showToast(level picker.Level, message string) {
	m.toastSeq++
	m.toast = &Toast{Message: message, Level: level, Seq: m.toastSeq}
}

func (m *Model) clearToastAfter() tea.Cmd {
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return MsgClearToast{Seq: seq}
	})
}

// viewStatusLine renders the current toast, or the short key help.
func (m *Model) viewStatusLine() string {
	width := m.contentWidth()
	if m.toast != nil {
		text := runewidth.Truncate(m.toast.Level.String()+": "+m.toast.Message, width, "…")
		return m.styles.ToastStyle(m.toast.Level).Render(text)
	}
	m.help.Width = width
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
