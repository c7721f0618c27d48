package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ModeKind distinguishes major modes from minor modes.
type ModeKind string

// Mode kinds.
const (
	KindMajor ModeKind = "major"
	KindMinor ModeKind = "minor"
)

// ParseModeKind parses a kind string from configuration.
// An empty string defaults to KindMinor.
func ParseModeKind(s string) (ModeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(KindMinor):
		return KindMinor, nil
	case string(KindMajor):
		return KindMajor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidModeKind, s)
}

// Location points at a line in a file.
type Location struct {
	File string
	Line int // 1-based; 0 means unknown
}

// IsZero reports whether the location is unset.
func (l Location) IsZero() bool {
	return l.File == ""
}

// String formats the location as file:line.
func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line <= 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Mode is a named behavior profile declared in configuration.
// Fields are ordered to minimize memory padding.
type Mode struct {
	Options     map[string]any // Customizable settings from [modes.<name>.options]
	Definition  Location       // Where the [modes.<name>] table is declared
	OptionsAt   Location       // Where [modes.<name>.options] is declared, if anywhere
	Name        string
	Kind        ModeKind
	Description string
	Lighter     string // Short status text shown while the mode is on
	// Toggle is false for status-only minor modes: they are known to the
	// registry but cannot be switched from here.
	Toggle bool
}

// IsMajor reports whether the mode is a major mode.
func (m *Mode) IsMajor() bool {
	return m.Kind == KindMajor
}

// IsMinor reports whether the mode is a minor mode.
func (m *Mode) IsMinor() bool {
	return m.Kind == KindMinor
}

// OptionKeys returns the option names in sorted order.
func (m *Mode) OptionKeys() []string {
	keys := make([]string, 0, len(m.Options))
	for k := range m.Options {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ValidateModeName checks that a mode name is usable as a candidate.
func ValidateModeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyModeName
	}
	return nil
}
