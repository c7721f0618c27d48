package picker

import (
	"context"
	"fmt"
	"log/slog"
)

// Dispatcher invokes source actions.
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger discards output.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{logger: logger}
}

// Dispatch runs the action labelled label on src exactly once with values.
// The label is looked up in the menu first, then in the persistent action.
func (d *Dispatcher) Dispatch(ctx context.Context, src *Source, label string, values []string) error {
	action, _, ok := src.lookup(label)
	if !ok {
		return &UnknownActionError{Source: src.Name, Label: label}
	}
	return d.invoke(ctx, src, action, values)
}

func (d *Dispatcher) invoke(ctx context.Context, src *Source, action Action, values []string) (err error) {
	if len(values) == 0 {
		return ErrNoSelection
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ActionError{Source: src.Name, Label: action.Label, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			d.logger.Warn("action failed", "source", src.Name, "action", action.Label, "error", err)
		}
	}()

	d.logger.Debug("dispatch", "source", src.Name, "action", action.Label, "count", len(values))
	if runErr := action.Run(ctx, values); runErr != nil {
		return &ActionError{Source: src.Name, Label: action.Label, Err: runErr}
	}
	return nil
}
