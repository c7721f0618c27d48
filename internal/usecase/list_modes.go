package usecase

import (
	"context"
	"errors"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// ModeFilter selects which minor modes ListModes returns.
type ModeFilter int

// Mode filters.
const (
	FilterAll ModeFilter = iota
	FilterActive
	FilterInactive
)

// ListModesInput contains the input for the ListModes use case.
type ListModesInput struct {
	Filter ModeFilter
}

// ModeEntry is one listed mode with its state.
type ModeEntry struct {
	Mode   *domain.Mode
	Active bool
}

// ListModesOutput contains the output of the ListModes use case.
type ListModesOutput struct {
	Major *ModeEntry  // Current major mode; nil when none is set
	Minor []ModeEntry // Sorted by name
}

// ListModes lists the current major mode and the minor modes.
type ListModes struct {
	host domain.ModeHost
}

// NewListModes creates a new ListModes use case.
func NewListModes(host domain.ModeHost) *ListModes {
	return &ListModes{host: host}
}

// Execute returns the modes matching the filter. The major mode is only
// reported when no filter is set.
func (uc *ListModes) Execute(_ context.Context, in ListModesInput) (*ListModesOutput, error) {
	out := &ListModesOutput{}

	if in.Filter == FilterAll {
		name, err := uc.host.CurrentMajorMode()
		switch {
		case errors.Is(err, domain.ErrNoMajorMode):
		case err != nil:
			return nil, err
		default:
			mode, err := uc.host.Lookup(name)
			if err != nil {
				return nil, err
			}
			out.Major = &ModeEntry{Mode: mode, Active: true}
		}
	}

	names, err := uc.host.AllMinorModes()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		mode, err := uc.host.Lookup(name)
		if err != nil {
			return nil, err
		}
		active, err := uc.host.IsActive(name)
		if err != nil {
			return nil, err
		}
		if (in.Filter == FilterActive && !active) || (in.Filter == FilterInactive && active) {
			continue
		}
		out.Minor = append(out.Minor, ModeEntry{Mode: mode, Active: active})
	}

	return out, nil
}
