package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

const (
	defaultWidth     = 80
	maxPreviewHeight = 12
)

// View renders the TUI.
func (m *Model) View() string {
	if m.closed() {
		return ""
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeQuery, ModeActionMenu:
		content = m.viewMain()
	}
	return m.styles.App.Render(content)
}

// contentWidth is the usable width inside the app padding.
func (m *Model) contentWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return max(m.width-2, 20)
}

// updateLayoutSizes sizes the preview pane for the current window.
func (m *Model) updateLayoutSizes() {
	m.preview.Width = max(m.contentWidth()-4, 10)
	h := maxPreviewHeight
	if m.height > 0 {
		h = min(h, m.height/3)
	}
	m.preview.Height = max(h, 3)
}

func (m *Model) viewMain() string {
	var sections []string
	sections = append(sections, m.viewQuery())

	var below []string
	if m.mode == ModeActionMenu {
		below = append(below, m.viewActionMenu())
	}
	if m.previewTitle != "" {
		below = append(below, m.viewPreview())
	}
	below = append(below, m.viewStatusLine())

	listHeight := 0 // unlimited
	if m.height > 0 {
		used := 1
		for _, s := range below {
			used += lipgloss.Height(s)
		}
		listHeight = max(m.height-used, 1)
	}
	sections = append(sections, m.viewCandidates(listHeight))
	sections = append(sections, below...)
	return strings.Join(sections, "\n")
}

// viewQuery renders the prompt line with the match count.
func (m *Model) viewQuery() string {
	visible := 0
	for _, g := range m.session.Groups() {
		visible += len(g.Rows)
	}
	count := fmt.Sprintf("%d", visible)
	if n := m.session.MarkedCount(); n > 0 {
		count += fmt.Sprintf(" [%d marked]", n)
	}
	return m.styles.Prompt.Render("Pattern: ") + m.query.View() + "  " + m.styles.Count.Render(count)
}

// viewCandidates renders every non-empty source with its rows, scrolled
// so the cursor row is visible. height 0 means no limit.
func (m *Model) viewCandidates(height int) string {
	width := m.contentWidth()
	var lines []string
	cursorLine := 0
	for _, g := range m.session.Groups() {
		if len(g.Rows) == 0 {
			continue
		}
		lines = append(lines, m.renderSourceHeader(g.Name, width))
		for _, row := range g.Rows {
			if row.Current {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderRow(row, g.NoMark, width))
		}
	}

	if len(lines) == 0 {
		return m.styles.EmptyState.Render("No matches")
	}
	if height > 0 && len(lines) > height {
		start := 0
		if cursorLine >= height {
			start = cursorLine - height + 1
		}
		lines = lines[start : start+height]
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderSourceHeader(name string, width int) string {
	label := m.styles.SourceHeader.Render(name)
	rest := width - lipgloss.Width(label) - 1
	if rest <= 0 {
		return label
	}
	return label + " " + m.styles.SourceHeaderLine.Render(strings.Repeat("─", rest))
}

func (m *Model) renderRow(row picker.Row, noMark bool, width int) string {
	cursor := "  "
	base := m.styles.Candidate
	if row.Current {
		cursor = m.styles.Cursor.Render("> ")
		base = m.styles.CandidateSelected
	}
	mark := "  "
	if row.Marked && !noMark {
		mark = m.styles.Mark.Render("✓ ")
	}
	display := renderCandidate(row.Match.Candidate.Display, row.Match.Positions, width-4, base, m.styles.MatchChar)
	return cursor + mark + display
}

// renderCandidate highlights the matched byte positions of s and truncates
// it to width display cells.
func renderCandidate(s string, positions []int, width int, base, hl lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	hit := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		hit[p] = struct{}{}
	}

	truncated := runewidth.StringWidth(s) > width
	limit := width
	if truncated {
		limit = width - 1
	}

	var (
		b       strings.Builder
		segment strings.Builder
		inMatch bool
		used    int
	)
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		if inMatch {
			b.WriteString(hl.Render(segment.String()))
		} else {
			b.WriteString(base.Render(segment.String()))
		}
		segment.Reset()
	}
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > limit {
			break
		}
		used += w
		_, matched := hit[i]
		if matched != inMatch {
			flush()
			inMatch = matched
		}
		segment.WriteRune(r)
	}
	flush()
	if truncated {
		b.WriteString(base.Render("…"))
	}
	return b.String()
}

func (m *Model) viewActionMenu() string {
	var b strings.Builder
	b.WriteString(m.styles.MenuTitle.Render("Actions"))
	for i, label := range m.menuLabels {
		b.WriteString("\n")
		num := "  "
		if i < 9 {
			num = fmt.Sprintf("%d ", i+1)
		}
		style := m.styles.MenuItem
		prefix := "  "
		if i == m.menuCursor {
			style = m.styles.MenuSelected
			prefix = "> "
		}
		b.WriteString(prefix + m.styles.MenuKey.Render(num) + style.Render(label))
	}
	return m.styles.Menu.Render(b.String())
}

func (m *Model) viewPreview() string {
	title := m.styles.PreviewTitle.Render(runewidth.Truncate(m.previewTitle, m.preview.Width, "…"))
	return m.styles.Preview.Render(title + "\n" + m.preview.View())
}

func (m *Model) viewHelp() string {
	m.help.Width = m.contentWidth()
	title := m.styles.PreviewTitle.Render("Key bindings")
	return m.styles.Help.Render(title + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
}
