package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	NextSource key.Binding
	PrevSource key.Binding

	// Marks
	Mark      key.Binding
	MarkAll   key.Binding
	UnmarkAll key.Binding

	// Actions
	Accept  key.Binding // Run the default action
	Preview key.Binding // Run the persistent action
	Actions key.Binding // Open the action menu

	// Preview pane
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// General
	Help   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "down"),
		),
		First: key.NewBinding(
			key.WithKeys("alt+<"),
			key.WithHelp("M-<", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("alt+>"),
			key.WithHelp("M->", "last"),
		),
		NextSource: key.NewBinding(
			key.WithKeys("ctrl+o", "ctrl+right"),
			key.WithHelp("C-o", "next source"),
		),
		PrevSource: key.NewBinding(
			key.WithKeys("shift+tab", "ctrl+left"),
			key.WithHelp("S-tab", "prev source"),
		),
		Mark: key.NewBinding(
			key.WithKeys("ctrl+@", "tab"),
			key.WithHelp("tab", "mark"),
		),
		MarkAll: key.NewBinding(
			key.WithKeys("alt+a"),
			key.WithHelp("M-a", "mark all"),
		),
		UnmarkAll: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("M-u", "unmark all"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "default action"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("C-z", "describe"),
		),
		Actions: key.NewBinding(
			key.WithKeys("ctrl+a", "alt+enter"),
			key.WithHelp("C-a", "actions"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll preview"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll preview"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g", "f1"),
			key.WithHelp("C-g", "help"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Actions, k.Preview, k.Mark, k.Help, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last, k.NextSource, k.PrevSource},
		{k.Mark, k.MarkAll, k.UnmarkAll},
		{k.Accept, k.Preview, k.Actions, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Cancel},
	}
}
