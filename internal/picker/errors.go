package picker

import (
	"errors"
	"fmt"
)

var (
	ErrAllSourcesFailed = errors.New("no source could be built")
	ErrUnknownAction    = errors.New("unknown action")
	ErrActionFailed     = errors.New("action failed")
	ErrNoSelection      = errors.New("no candidates selected")
	ErrSessionClosed    = errors.New("session is closed")
	ErrInvalidSource    = errors.New("invalid source")
	ErrDuplicateSource  = errors.New("duplicate source name")
)

// SourceBuildError reports a builder that failed at open time.
// The source is dropped; the rest of the session is unaffected.
type SourceBuildError struct {
	Err    error
	Source string
}

func (e *SourceBuildError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

func (e *SourceBuildError) Unwrap() error {
	return e.Err
}

// UnknownActionError reports a label missing from a source's menu.
type UnknownActionError struct {
	Source string
	Label  string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("source %q has no action %q", e.Source, e.Label)
}

func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// ActionError wraps an error returned or raised by an action.
type ActionError struct {
	Err    error
	Source string
	Label  string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func (e *ActionError) Is(target error) bool {
	return target == ErrActionFailed
}
