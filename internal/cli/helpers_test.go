package cli

import (
	"bytes"
	"testing"

	"github.com/xuchunyang/helm-describe-modes/internal/app"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/testutil"
)

// newTestContainer creates a container over a mock host with text-mode as
// major mode and three minor modes, abbrev-mode and show-paren-mode on.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockModeHost) {
	t.Helper()

	host := testutil.NewMockModeHost("text-mode",
		[]string{"abbrev-mode", "flyspell-mode", "show-paren-mode"},
		"abbrev-mode", "show-paren-mode")
	host.Modes["text-mode"].Description = "Major mode for editing plain text."
	host.Modes["text-mode"].Definition = domain.Location{File: "/repo/.modes.toml", Line: 3}
	host.Modes["flyspell-mode"].Lighter = " Fly"
	host.Modes["flyspell-mode"].Description = "Spell checking on the fly."
	host.Modes["flyspell-mode"].Definition = domain.Location{File: "/repo/.modes.toml", Line: 12}
	host.Modes["abbrev-mode"].Definition = domain.Location{File: "/repo/.modes.toml", Line: 17}
	host.Modes["abbrev-mode"].OptionsAt = domain.Location{File: "/repo/.modes.toml", Line: 21}
	host.Modes["abbrev-mode"].Options = map[string]any{"save-abbrevs": true}

	cfg := domain.NewDefaultConfig()
	for name, m := range host.Modes {
		cfg.Modes[name] = *m
	}

	manager := &testutil.MockConfigManager{
		RepoInfo:   domain.ConfigInfo{Path: "/repo/.modes.toml", Exists: true},
		GlobalInfo: domain.ConfigInfo{Path: "/home/u/.config/describe-modes/config.toml"},
	}
	c := app.NewWithDeps(app.Config{RepoRoot: "/repo"}, cfg, host,
		&testutil.MockConfigLoader{Config: cfg}, manager, testutil.NopLogger{})
	return c, host
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCommand(c, "test-version")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

// stubOpener replaces openLocationFunc for the duration of the test.
func stubOpener(t *testing.T) *[]domain.Location {
	t.Helper()
	original := openLocationFunc
	t.Cleanup(func() { openLocationFunc = original })

	var opened []domain.Location
	openLocationFunc = func(loc domain.Location) error {
		opened = append(opened, loc)
		return nil
	}
	return &opened
}
