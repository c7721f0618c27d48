package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noop(context.Context, []string) error { return nil }

func TestSource_Validate(t *testing.T) {
	valid := func() *Source {
		return &Source{
			Name:       "Minor modes",
			Candidates: Strings("a", "b"),
			Actions:    []Action{{Label: "Describe", Run: noop}},
		}
	}

	tests := []struct {
		mutate  func(*Source)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(*Source) {}},
		{name: "empty candidates are fine", mutate: func(s *Source) { s.Candidates = nil }},
		{name: "empty name", mutate: func(s *Source) { s.Name = "" }, wantErr: true},
		{name: "empty menu", mutate: func(s *Source) { s.Actions = nil }, wantErr: true},
		{name: "empty label", mutate: func(s *Source) { s.Actions[0].Label = "" }, wantErr: true},
		{name: "nil action", mutate: func(s *Source) { s.Actions[0].Run = nil }, wantErr: true},
		{
			name: "duplicate label",
			mutate: func(s *Source) {
				s.Actions = append(s.Actions, Action{Label: "Describe", Run: noop})
			},
			wantErr: true,
		},
		{name: "duplicate value", mutate: func(s *Source) { s.Candidates = Strings("a", "a") }, wantErr: true},
		{name: "nil persistent func", mutate: func(s *Source) { s.Persistent = &Action{Label: "Preview"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := valid()
			tt.mutate(src)
			err := src.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSource), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSource_Labels(t *testing.T) {
	src := &Source{
		Name: "s",
		Actions: []Action{
			{Label: "Turn on", Run: noop},
			{Label: "Describe", Run: noop},
		},
	}

	assert.Equal(t, []string{"Turn on", "Describe"}, src.Labels())
	assert.Equal(t, "Turn on", src.DefaultAction().Label)
}

func TestStrings(t *testing.T) {
	cands := Strings("x", "y")

	assert.Equal(t, []Candidate{{Display: "x", Value: "x"}, {Display: "y", Value: "y"}}, cands)
	assert.Equal(t, []string{"x", "y"}, Values(cands))
}
