package usecase

import (
	"context"
	"fmt"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// LocateModeInput contains the input for the LocateMode use case.
type LocateModeInput struct {
	Name string // Mode name
}

// LocateModeOutput contains the output of the LocateMode use case.
type LocateModeOutput struct {
	Location domain.Location
}

// LocateMode finds where a mode is declared.
type LocateMode struct {
	host domain.ModeHost
}

// NewLocateMode creates a new LocateMode use case.
func NewLocateMode(host domain.ModeHost) *LocateMode {
	return &LocateMode{host: host}
}

// Execute returns the definition location of the mode.
func (uc *LocateMode) Execute(_ context.Context, in LocateModeInput) (*LocateModeOutput, error) {
	mode, err := uc.host.Lookup(in.Name)
	if err != nil {
		return nil, err
	}
	if mode.Definition.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoDefinition, mode.Name)
	}
	return &LocateModeOutput{Location: mode.Definition}, nil
}

// CustomizeModeInput contains the input for the CustomizeMode use case.
type CustomizeModeInput struct {
	Name string // Mode name
}

// CustomizeModeOutput contains the output of the CustomizeMode use case.
type CustomizeModeOutput struct {
	Location domain.Location
	Options  bool // Location points at an options table
}

// CustomizeMode finds where a mode's options are set.
type CustomizeMode struct {
	host domain.ModeHost
}

// NewCustomizeMode creates a new CustomizeMode use case.
func NewCustomizeMode(host domain.ModeHost) *CustomizeMode {
	return &CustomizeMode{host: host}
}

// Execute returns the location of the mode's options table, or its
// definition when it declares no options.
func (uc *CustomizeMode) Execute(_ context.Context, in CustomizeModeInput) (*CustomizeModeOutput, error) {
	mode, err := uc.host.Lookup(in.Name)
	if err != nil {
		return nil, err
	}
	if !mode.OptionsAt.IsZero() {
		return &CustomizeModeOutput{Location: mode.OptionsAt, Options: true}, nil
	}
	if mode.Definition.IsZero() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoDefinition, mode.Name)
	}
	return &CustomizeModeOutput{Location: mode.Definition}, nil
}
