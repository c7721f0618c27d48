package usecase

import (
	"context"
	"log/slog"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/picker"
)

// OpenPickerInput contains the input for the OpenPicker use case.
type OpenPickerInput struct {
	Query   string   // Initial query
	Sources []string // Source IDs; empty uses [picker] sources
}

// OpenPickerOutput contains the output of the OpenPicker use case.
type OpenPickerOutput struct {
	Session  *picker.Session
	Warnings []string // Unknown source or action IDs
}

// OpenPicker opens a picker session over the mode sources.
type OpenPicker struct {
	config  *domain.Config
	sources *ModeSources
	logger  *slog.Logger
}

// NewOpenPicker creates a new OpenPicker use case.
func NewOpenPicker(config *domain.Config, sources *ModeSources, logger *slog.Logger) *OpenPicker {
	return &OpenPicker{
		config:  config,
		sources: sources,
		logger:  logger,
	}
}

// Execute builds the configured sources and opens a session.
func (uc *OpenPicker) Execute(ctx context.Context, in OpenPickerInput) (*OpenPickerOutput, error) {
	ids := in.Sources
	if len(ids) == 0 {
		ids = uc.config.Picker.Sources
	}

	builders, warnings := uc.sources.Builders(uc.config, ids)
	session, err := picker.Open(ctx, builders,
		picker.WithQuery(in.Query),
		picker.WithLogger(uc.logger),
	)
	if err != nil {
		return nil, err
	}

	return &OpenPickerOutput{
		Session:  session,
		Warnings: warnings,
	}, nil
}
