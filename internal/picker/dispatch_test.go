package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Dispatch(t *testing.T) {
	var calls [][]string
	src := &Source{
		Name: "Inactive",
		Actions: []Action{{Label: "Turn on", Run: func(_ context.Context, values []string) error {
			calls = append(calls, values)
			return nil
		}}},
		Persistent: &Action{Label: "Preview", Run: func(_ context.Context, values []string) error {
			calls = append(calls, append([]string{"preview"}, values...))
			return nil
		}},
	}
	d := NewDispatcher(nil)

	require.NoError(t, d.Dispatch(context.Background(), src, "Turn on", []string{"x", "y"}))
	require.NoError(t, d.Dispatch(context.Background(), src, "Preview", []string{"x"}))

	assert.Equal(t, [][]string{{"x", "y"}, {"preview", "x"}}, calls)
}

func TestDispatcher_Errors(t *testing.T) {
	boom := errors.New("boom")
	src := &Source{
		Name: "Active",
		Actions: []Action{
			{Label: "Fail", Run: func(context.Context, []string) error { return boom }},
			{Label: "Panic", Run: func(context.Context, []string) error { panic("oops") }},
		},
	}
	d := NewDispatcher(nil)
	ctx := context.Background()

	t.Run("unknown action", func(t *testing.T) {
		err := d.Dispatch(ctx, src, "Nope", []string{"x"})
		assert.ErrorIs(t, err, ErrUnknownAction)
		var unknown *UnknownActionError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Nope", unknown.Label)
	})

	t.Run("empty selection", func(t *testing.T) {
		err := d.Dispatch(ctx, src, "Fail", nil)
		assert.ErrorIs(t, err, ErrNoSelection)
	})

	t.Run("action error", func(t *testing.T) {
		err := d.Dispatch(ctx, src, "Fail", []string{"x"})
		assert.ErrorIs(t, err, ErrActionFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("action panic", func(t *testing.T) {
		err := d.Dispatch(ctx, src, "Panic", []string{"x"})
		assert.ErrorIs(t, err, ErrActionFailed)
		assert.Contains(t, err.Error(), "oops")
	})
}
