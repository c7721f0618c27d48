package domain

import "errors"

// Domain errors.
var (
	ErrModeNotFound       = errors.New("mode not found")
	ErrNotMinorMode       = errors.New("not a minor mode")
	ErrNotMajorMode       = errors.New("not a major mode")
	ErrModeNotToggleable  = errors.New("mode has no toggle (status-only minor mode)")
	ErrNoDefinition       = errors.New("mode definition location unknown")
	ErrNoMajorMode        = errors.New("no major mode set for this context")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrConfigExists       = errors.New("config file already exists")
	ErrEmptyModeName      = errors.New("mode name cannot be empty")
	ErrInvalidModeKind    = errors.New("invalid mode kind")
	ErrUnknownSource      = errors.New("unknown picker source")
	ErrUnknownActionID    = errors.New("unknown picker action")
	ErrEditorUnavailable  = errors.New("no editor configured")
	ErrStateStoreConflict = errors.New("state changed concurrently")
)
