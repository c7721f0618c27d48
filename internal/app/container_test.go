package app

import (
	"context"
	"os"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/gitstore"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/jsonstore"
	"github.com/xuchunyang/helm-describe-modes/internal/testutil"
	"github.com/xuchunyang/helm-describe-modes/internal/usecase"
)

const testConfig = `
[context]
major = "text-mode"

[modes.text-mode]
kind = "major"

[modes.flyspell-mode]
kind = "minor"
`

func setupRepo(t *testing.T, config string) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	if config != "" {
		require.NoError(t, os.WriteFile(domain.RepoConfigPath(dir), []byte(config), 0o644))
	}
	return dir
}

func TestNew_GitStore(t *testing.T) {
	dir := setupRepo(t, testConfig)

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, dir, c.Config.RepoRoot)
	assert.Equal(t, domain.RepoDataDir(dir), c.Config.DataDir)
	assert.IsType(t, &gitstore.Store{}, c.StateStore)

	_, err = c.ToggleModeUseCase().Execute(context.Background(), usecase.ToggleModeInput{Name: "flyspell-mode"})
	require.NoError(t, err)

	state, err := c.StateStore.Load()
	require.NoError(t, err)
	assert.True(t, state.IsActive("flyspell-mode"))
}

func TestNew_JSONStore(t *testing.T) {
	dir := setupRepo(t, testConfig+"\n[state]\nstore = \"json\"\n")

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	store, ok := c.StateStore.(*jsonstore.Store)
	require.True(t, ok)
	assert.Equal(t, domain.StatePath(domain.RepoDataDir(dir)), store.Path())
}

func TestNew_UnknownStoreFallsBackToGit(t *testing.T) {
	dir := setupRepo(t, "[state]\nstore = \"sqlite\"\n")

	c, err := New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.IsType(t, &gitstore.Store{}, c.StateStore)
	assert.Contains(t, c.AppConfig.Warnings, `unknown state store "sqlite", using "git"`)
}

func TestNew_OutsideRepository(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Empty(t, c.Config.RepoRoot)
	assert.Equal(t, domain.GlobalDataDir(stateDir), c.Config.DataDir)
	assert.IsType(t, &jsonstore.Store{}, c.StateStore)
}

func TestNew_InvalidConfig(t *testing.T) {
	dir := setupRepo(t, "[modes\n")

	_, err := New(dir)

	assert.ErrorContains(t, err, "parse")
}

func TestNewWithDeps_OpenPicker(t *testing.T) {
	host := testutil.NewMockModeHost("text-mode", []string{"flyspell-mode"})
	c := NewWithDeps(Config{}, domain.NewDefaultConfig(), host, &testutil.MockConfigLoader{}, &testutil.MockConfigManager{}, testutil.NopLogger{})

	out, err := c.OpenPickerUseCase(&testutil.MockPresenter{}).Execute(context.Background(), usecase.OpenPickerInput{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Major Mode", "Active Minor Modes", "Inactive Minor Modes"}, out.Session.Sources())
	assert.NoError(t, c.Close())
}
