package picker

import (
	"context"
	"fmt"
)

// ActionFunc runs an action over the selected values of one source.
// values is never empty; single-selection sources pass one element.
type ActionFunc func(ctx context.Context, values []string) error

// Action is a labelled entry of a source's action menu.
type Action struct {
	Run   ActionFunc
	Label string
}

// Source is a named group of candidates with its own action menu.
// Fields are ordered to minimize memory padding.
type Source struct {
	// Transformer, when set, runs once over Candidates at open time.
	Transformer func([]Candidate) []Candidate

	// Persistent is invoked without closing the session.
	Persistent *Action

	Name       string
	Candidates []Candidate

	// Actions is the ordered menu. The first entry is the default action.
	Actions []Action

	// NoMark disables multi-select: the cursor row is the only selection.
	NoMark bool
}

// Validate checks that the source can be shown and dispatched.
func (s *Source) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSource)
	}
	if len(s.Actions) == 0 {
		return fmt.Errorf("%w: %s: empty action menu", ErrInvalidSource, s.Name)
	}
	labels := make(map[string]struct{}, len(s.Actions))
	for i, a := range s.Actions {
		if a.Label == "" {
			return fmt.Errorf("%w: %s: action %d has no label", ErrInvalidSource, s.Name, i)
		}
		if a.Run == nil {
			return fmt.Errorf("%w: %s: action %q has no function", ErrInvalidSource, s.Name, a.Label)
		}
		if _, dup := labels[a.Label]; dup {
			return fmt.Errorf("%w: %s: duplicate action %q", ErrInvalidSource, s.Name, a.Label)
		}
		labels[a.Label] = struct{}{}
	}
	if s.Persistent != nil && s.Persistent.Run == nil {
		return fmt.Errorf("%w: %s: persistent action has no function", ErrInvalidSource, s.Name)
	}
	seen := make(map[string]struct{}, len(s.Candidates))
	for _, c := range s.Candidates {
		if _, dup := seen[c.Value]; dup {
			return fmt.Errorf("%w: %s: duplicate candidate %q", ErrInvalidSource, s.Name, c.Value)
		}
		seen[c.Value] = struct{}{}
	}
	return nil
}

// DefaultAction returns the first menu entry.
func (s *Source) DefaultAction() Action {
	return s.Actions[0]
}

// Labels returns the menu labels in order.
func (s *Source) Labels() []string {
	labels := make([]string, len(s.Actions))
	for i, a := range s.Actions {
		labels[i] = a.Label
	}
	return labels
}

// lookup finds an action by label in the menu, then the persistent action.
func (s *Source) lookup(label string) (Action, bool, bool) {
	for _, a := range s.Actions {
		if a.Label == label {
			return a, false, true
		}
	}
	if s.Persistent != nil && s.Persistent.Label == label {
		return *s.Persistent, true, true
	}
	return Action{}, false, false
}

// Builder produces a Source when a session opens.
// ID identifies the builder in diagnostics when Build fails before a
// source name is known.
type Builder struct {
	Build func(ctx context.Context) (*Source, error)
	ID    string
}
