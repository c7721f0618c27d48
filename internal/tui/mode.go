// Package tui provides the terminal user interface of the mode picker.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeQuery      Mode = iota // Typing a query and moving through candidates
	ModeActionMenu             // Choosing an action for the selection
	ModeHelp                   // Key binding overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeActionMenu:
		return "actions"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeQuery
}
