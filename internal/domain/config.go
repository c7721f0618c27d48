package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Picker source IDs.
const (
	SourceMajorMode          = "major-mode"
	SourceActiveMinorModes   = "active-minor-modes"
	SourceInactiveMinorModes = "inactive-minor-modes"
)

// Picker action IDs.
const (
	ActionDescribe   = "describe"
	ActionFind       = "find"
	ActionCustomize  = "customize"
	ActionSetDefault = "set-default"
	ActionTurnOn     = "turn-on"
	ActionTurnOff    = "turn-off"
	ActionToggle     = "toggle"
)

// State store kinds.
const (
	StoreGit  = "git"
	StoreJSON = "json"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Modes    map[string]Mode // [modes.<name>]
	Picker   PickerConfig    // [picker]
	Warnings []string        // Unknown keys and other non-fatal problems
	Context  ContextConfig   // [context]
	Log      LogConfig       // [log]
	State    StateConfig     // [state]
}

// PickerConfig holds the [picker] section.
type PickerConfig struct {
	Actions map[string][]ActionRef // Source ID -> ordered action menu
	Sources []string               // Source IDs in display order
}

// ActionRef names a built-in action and the label shown for it.
type ActionRef struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// ContextConfig holds the [context] section.
type ContextConfig struct {
	Major string // Major mode used when the state has none
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// StateConfig holds the [state] section.
type StateConfig struct {
	Store     string // "git" or "json"
	Namespace string // Ref namespace for the git store
}

// DefaultSources returns the default picker source order.
func DefaultSources() []string {
	return []string{SourceMajorMode, SourceActiveMinorModes, SourceInactiveMinorModes}
}

// DefaultActions returns the default action menus, keyed by source ID.
// The first entry of each menu is the source's default action.
func DefaultActions() map[string][]ActionRef {
	return map[string][]ActionRef{
		SourceMajorMode: {
			{ID: ActionDescribe, Label: "Describe major mode"},
			{ID: ActionFind, Label: "Find major mode"},
			{ID: ActionCustomize, Label: "Customize major mode"},
			{ID: ActionSetDefault, Label: "Set as default major mode"},
		},
		SourceActiveMinorModes: {
			{ID: ActionDescribe, Label: "Describe minor mode"},
			{ID: ActionFind, Label: "Find minor mode"},
			{ID: ActionTurnOff, Label: "Turn off minor mode(s)"},
			{ID: ActionCustomize, Label: "Customize minor mode"},
		},
		SourceInactiveMinorModes: {
			{ID: ActionTurnOn, Label: "Turn on minor mode(s)"},
			{ID: ActionDescribe, Label: "Describe minor mode"},
			{ID: ActionFind, Label: "Find minor mode"},
			{ID: ActionCustomize, Label: "Customize minor mode"},
		},
	}
}

// KnownSource reports whether id names a built-in source.
func KnownSource(id string) bool {
	return slices.Contains(DefaultSources(), id)
}

// KnownAction reports whether id names a built-in action.
func KnownAction(id string) bool {
	switch id {
	case ActionDescribe, ActionFind, ActionCustomize, ActionSetDefault,
		ActionTurnOn, ActionTurnOff, ActionToggle:
		return true
	}
	return false
}

// DefaultActionLabel returns a label for an action ID when the user gave none.
func DefaultActionLabel(id string) string {
	switch id {
	case ActionDescribe:
		return "Describe mode"
	case ActionFind:
		return "Find mode"
	case ActionCustomize:
		return "Customize mode"
	case ActionSetDefault:
		return "Set as default major mode"
	case ActionTurnOn:
		return "Turn on minor mode(s)"
	case ActionTurnOff:
		return "Turn off minor mode(s)"
	case ActionToggle:
		return "Toggle minor mode(s)"
	}
	return id
}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Modes: make(map[string]Mode),
		Picker: PickerConfig{
			Sources: DefaultSources(),
			Actions: DefaultActions(),
		},
		Log: LogConfig{
			Level: "info",
		},
		State: StateConfig{
			Store:     StoreGit,
			Namespace: DefaultNamespace,
		},
	}
}

// MinorModeNames returns declared minor mode names in sorted order.
func (c *Config) MinorModeNames() []string {
	var names []string
	for name, m := range c.Modes {
		if m.Kind == KindMinor {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// MajorModeNames returns declared major mode names in sorted order.
func (c *Config) MajorModeNames() []string {
	var names []string
	for name, m := range c.Modes {
		if m.Kind == KindMajor {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// ActionsFor returns the configured menu for a source, falling back to the
// default menu.
func (c *Config) ActionsFor(sourceID string) []ActionRef {
	if refs, ok := c.Picker.Actions[sourceID]; ok {
		return refs
	}
	return DefaultActions()[sourceID]
}

// RenderConfigTemplate returns a commented starter configuration.
func RenderConfigTemplate() string {
	var b strings.Builder
	b.WriteString(`# describe-modes configuration
#
# Modes are declared under [modes.<name>]. Exactly one major mode is
# current per context; minor modes are switched on and off independently.

[context]
# Major mode used until one is chosen explicitly.
major = "text-mode"

[picker]
# Sources shown by the picker, in order.
sources = [`)
	for i, s := range DefaultSources() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", s)
	}
	b.WriteString(`]

# Action menus may be overridden per source. The first entry is the
# default action. Entries are action IDs or {id, label} tables.
# [picker.actions]
# inactive-minor-modes = [{ id = "turn-on", label = "Enable" }, "describe"]

[log]
level = "info"

[state]
# "git" keeps state under refs/<namespace>/ in the repository,
# "json" keeps it in .git/describe-modes/state.json.
store = "git"
namespace = "modes"

[modes.text-mode]
kind = "major"
description = "Major mode for editing plain text."

[modes.prog-mode]
kind = "major"
description = "Major mode for editing source code."

[modes.show-paren-mode]
kind = "minor"
description = "Highlight matching parentheses."

[modes.flyspell-mode]
kind = "minor"
lighter = " Fly"
description = "Spell checking on the fly."

[modes.abbrev-mode]
kind = "minor"
lighter = " Abbrev"
description = "Expand abbreviations as they are typed."

[modes.abbrev-mode.options]
save-abbrevs = true
`)
	return b.String()
}
