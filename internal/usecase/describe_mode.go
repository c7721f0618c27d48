package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// DescribeModeInput contains the input for the DescribeMode use case.
type DescribeModeInput struct {
	Name string // Mode name
}

// DescribeModeOutput contains the output of the DescribeMode use case.
type DescribeModeOutput struct {
	Mode   *domain.Mode
	Title  string // Help buffer title
	Body   string // Rendered help text
	Active bool   // Minor: switched on. Major: current major mode.
}

// DescribeMode renders the help text of a mode.
type DescribeMode struct {
	host domain.ModeHost
}

// NewDescribeMode creates a new DescribeMode use case.
func NewDescribeMode(host domain.ModeHost) *DescribeMode {
	return &DescribeMode{host: host}
}

// Execute looks up the mode and renders its help text.
func (uc *DescribeMode) Execute(_ context.Context, in DescribeModeInput) (*DescribeModeOutput, error) {
	mode, err := uc.host.Lookup(in.Name)
	if err != nil {
		return nil, err
	}

	var active bool
	if mode.IsMajor() {
		current, err := uc.host.CurrentMajorMode()
		if err != nil && !errors.Is(err, domain.ErrNoMajorMode) {
			return nil, err
		}
		active = current == mode.Name
	} else {
		active, err = uc.host.IsActive(mode.Name)
		if err != nil {
			return nil, err
		}
	}

	body, err := renderHelp(mode, active)
	if err != nil {
		return nil, err
	}

	return &DescribeModeOutput{
		Mode:   mode,
		Title:  mode.Name,
		Body:   body,
		Active: active,
	}, nil
}

// renderHelp formats the help text shown for a mode.
func renderHelp(mode *domain.Mode, active bool) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a %s mode.\n\n", mode.Name, mode.Kind)

	switch {
	case mode.IsMajor() && active:
		b.WriteString("It is the current major mode.\n")
	case mode.IsMajor():
		b.WriteString("It is not the current major mode.\n")
	case active:
		b.WriteString("It is currently enabled.\n")
	default:
		b.WriteString("It is currently disabled.\n")
	}
	if mode.IsMinor() && !mode.Toggle {
		b.WriteString("It is status-only and cannot be toggled here.\n")
	}
	if mode.Lighter != "" {
		fmt.Fprintf(&b, "Lighter: %q\n", mode.Lighter)
	}
	if !mode.Definition.IsZero() {
		fmt.Fprintf(&b, "Defined in %s\n", mode.Definition)
	}

	if mode.Description != "" {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(mode.Description))
		b.WriteString("\n")
	}

	if len(mode.Options) > 0 {
		data, err := toml.Marshal(mode.Options)
		if err != nil {
			return "", fmt.Errorf("render options of %s: %w", mode.Name, err)
		}
		b.WriteString("\nOptions:\n")
		for line := range strings.Lines(string(data)) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			b.WriteString("  ")
			b.WriteString(line)
		}
	}

	return b.String(), nil
}
