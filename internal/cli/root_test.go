package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuchunyang/helm-describe-modes/internal/picker"
	"github.com/xuchunyang/helm-describe-modes/internal/tui"
)

// stubPicker replaces launchPickerFunc and records the session it gets.
func stubPicker(t *testing.T, run func(ctx context.Context, s *picker.Session, p *tui.Presenter) (tui.Result, error)) *[]*picker.Session {
	t.Helper()
	original := launchPickerFunc
	t.Cleanup(func() { launchPickerFunc = original })

	var sessions []*picker.Session
	launchPickerFunc = func(ctx context.Context, s *picker.Session, p *tui.Presenter) (tui.Result, error) {
		sessions = append(sessions, s)
		if run == nil {
			return tui.Result{}, nil
		}
		return run(ctx, s, p)
	}
	return &sessions
}

func TestNewRootCommand_NoArgs_LaunchesPicker(t *testing.T) {
	c, _ := newTestContainer(t)
	sessions := stubPicker(t, nil)

	_, _, err := execute(t, c)

	require.NoError(t, err)
	require.Len(t, *sessions, 1)
	assert.Equal(t, []string{"Major Mode", "Active Minor Modes", "Inactive Minor Modes"}, (*sessions)[0].Sources())
}

func TestNewRootCommand_QueryFlag(t *testing.T) {
	c, _ := newTestContainer(t)
	sessions := stubPicker(t, nil)

	_, _, err := execute(t, c, "--query", "fly")

	require.NoError(t, err)
	require.Len(t, *sessions, 1)
	assert.Equal(t, "fly", (*sessions)[0].Query())
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	sessions := stubPicker(t, nil)

	out, _, err := execute(t, nil, "--help")

	assert.NoError(t, err)
	assert.Empty(t, *sessions, "picker should not open for --help")
	assert.Contains(t, out, "Mode Commands:")
	assert.Contains(t, out, "toggle")
}

func TestNewRootCommand_Version(t *testing.T) {
	out, _, err := execute(t, nil, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t)
	c.AppConfig.Warnings = []string{"unknown section: colours"}

	_, errOut, err := execute(t, c, "list")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: unknown section: colours")
}

func TestNewRootCommand_NilContainer(t *testing.T) {
	for _, args := range [][]string{{}, {"list"}, {"describe", "x"}, {"config", "show"}} {
		_, _, err := execute(t, nil, args...)
		assert.ErrorIs(t, err, errNoContainer, "args %v", args)
	}
}
