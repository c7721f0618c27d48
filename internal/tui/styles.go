package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	// Candidate colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	Match         lipgloss.Color
	Marked        lipgloss.Color

	// Group header
	GroupLine lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	Match:         lipgloss.Color("#74B9FF"), // Light blue
	Marked:        lipgloss.Color("#00B894"), // Green

	GroupLine: lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Query line
	Prompt lipgloss.Style
	Count  lipgloss.Style

	// Candidates
	SourceHeader      lipgloss.Style
	SourceHeaderLine  lipgloss.Style
	Candidate         lipgloss.Style
	CandidateSelected lipgloss.Style
	MatchChar         lipgloss.Style
	Cursor            lipgloss.Style
	Mark              lipgloss.Style
	EmptyState        lipgloss.Style

	// Preview pane
	Preview      lipgloss.Style
	PreviewTitle lipgloss.Style

	// Action menu
	Menu         lipgloss.Style
	MenuTitle    lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuKey      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Help
	Help   lipgloss.Style
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Count: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		SourceHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		SourceHeaderLine: lipgloss.NewStyle().
			Foreground(Colors.GroupLine),

		Candidate: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		CandidateSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		MatchChar: lipgloss.NewStyle().
			Foreground(Colors.Match).
			Underline(true),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Mark: lipgloss.NewStyle().
			Foreground(Colors.Marked).
			Bold(true),

		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		MenuTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		MenuItem: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		MenuSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ToastInfo: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ToastWarning: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		ToastError: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

// ToastStyle returns the style for a notification level.
func (s Styles) ToastStyle(level picker.Level) lipgloss.Style {
	switch level {
	case picker.LevelError:
		return s.ToastError
	case picker.LevelWarning:
		return s.ToastWarning
	case picker.LevelInfo:
		return s.ToastInfo
	}
	return s.ToastInfo
}
