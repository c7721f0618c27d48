package usecase

import (
	"context"
	"fmt"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// ToggleModeInput contains the input for the ToggleMode use case.
type ToggleModeInput struct {
	On   *bool  // nil flips the current state
	Name string // Minor mode name
}

// ToggleModeOutput contains the output of the ToggleMode use case.
type ToggleModeOutput struct {
	Name    string
	Active  bool // State after the call
	Changed bool
}

// ToggleMode turns a minor mode on or off.
type ToggleMode struct {
	host   domain.ModeHost
	logger domain.Logger
}

// NewToggleMode creates a new ToggleMode use case.
func NewToggleMode(host domain.ModeHost, logger domain.Logger) *ToggleMode {
	return &ToggleMode{host: host, logger: logger}
}

// Execute switches the mode. Requesting the state the mode is already in
// succeeds without writing.
func (uc *ToggleMode) Execute(_ context.Context, in ToggleModeInput) (*ToggleModeOutput, error) {
	current, err := uc.host.IsActive(in.Name)
	if err != nil {
		return nil, err
	}

	want := !current
	if in.On != nil {
		want = *in.On
	}
	if want == current {
		return &ToggleModeOutput{Name: in.Name, Active: current}, nil
	}

	if err := uc.host.SetActive(in.Name, want); err != nil {
		return nil, fmt.Errorf("turn %s %s: %w", onOff(want), in.Name, err)
	}
	uc.logger.Debug("", "mode", fmt.Sprintf("%s turned %s", in.Name, onOff(want)))

	return &ToggleModeOutput{Name: in.Name, Active: want, Changed: true}, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// SetMajorModeInput contains the input for the SetMajorMode use case.
type SetMajorModeInput struct {
	Name string // Major mode name
}

// SetMajorModeOutput contains the output of the SetMajorMode use case.
type SetMajorModeOutput struct {
	Previous string // Major mode before the switch; empty if none
}

// SetMajorMode switches the current major mode.
type SetMajorMode struct {
	host domain.ModeHost
}

// NewSetMajorMode creates a new SetMajorMode use case.
func NewSetMajorMode(host domain.ModeHost) *SetMajorMode {
	return &SetMajorMode{host: host}
}

// Execute switches to the named major mode.
func (uc *SetMajorMode) Execute(_ context.Context, in SetMajorModeInput) (*SetMajorModeOutput, error) {
	previous, _ := uc.host.CurrentMajorMode()
	if err := uc.host.SetMajorMode(in.Name); err != nil {
		return nil, err
	}
	return &SetMajorModeOutput{Previous: previous}, nil
}

// SetDefaultMajorModeInput contains the input for the SetDefaultMajorMode use case.
type SetDefaultMajorModeInput struct {
	Name string // Major mode name
}

// SetDefaultMajorModeOutput contains the output of the SetDefaultMajorMode use case.
type SetDefaultMajorModeOutput struct{}

// SetDefaultMajorMode records the major mode new contexts start in.
type SetDefaultMajorMode struct {
	host domain.ModeHost
}

// NewSetDefaultMajorMode creates a new SetDefaultMajorMode use case.
func NewSetDefaultMajorMode(host domain.ModeHost) *SetDefaultMajorMode {
	return &SetDefaultMajorMode{host: host}
}

// Execute records the default major mode.
func (uc *SetDefaultMajorMode) Execute(_ context.Context, in SetDefaultMajorModeInput) (*SetDefaultMajorModeOutput, error) {
	if err := uc.host.SetDefaultMajorMode(in.Name); err != nil {
		return nil, err
	}
	return &SetDefaultMajorModeOutput{}, nil
}
