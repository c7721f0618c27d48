package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

func writeRepoConfig(t *testing.T, repoRoot, content string) string {
	t.Helper()
	path := domain.RepoConfigPath(repoRoot)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeGlobalConfig(t *testing.T, globalDir, content string) string {
	t.Helper()
	path := filepath.Join(globalDir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSources(), cfg.Picker.Sources)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, domain.StoreGit, cfg.State.Store)
	assert.Empty(t, cfg.Modes)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_RepoConfigOnly(t *testing.T) {
	repoRoot := t.TempDir()
	path := writeRepoConfig(t, repoRoot, `
[context]
major = "text-mode"

[log]
level = "debug"

[state]
store = "json"

[modes.text-mode]
kind = "major"
description = "Plain text."

[modes.flyspell-mode]
lighter = " Fly"
description = "Spell checking."

[modes.flyspell-mode.options]
dictionary = "en_US"
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "text-mode", cfg.Context.Major)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.StoreJSON, cfg.State.Store)
	assert.Equal(t, domain.DefaultNamespace, cfg.State.Namespace)

	text := cfg.Modes["text-mode"]
	assert.Equal(t, domain.KindMajor, text.Kind)
	assert.Equal(t, "Plain text.", text.Description)
	assert.Equal(t, domain.Location{File: path, Line: 11}, text.Definition)

	fly := cfg.Modes["flyspell-mode"]
	assert.Equal(t, domain.KindMinor, fly.Kind, "kind defaults to minor")
	assert.True(t, fly.Toggle, "toggle defaults to true")
	assert.Equal(t, " Fly", fly.Lighter)
	assert.Equal(t, "en_US", fly.Options["dictionary"])
	assert.Equal(t, 15, fly.Definition.Line)
	assert.Equal(t, domain.Location{File: path, Line: 19}, fly.OptionsAt)
	assert.True(t, text.OptionsAt.IsZero())
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_MergeRepoOverridesGlobal(t *testing.T) {
	repoRoot := t.TempDir()
	globalDir := t.TempDir()
	writeGlobalConfig(t, globalDir, `
[log]
level = "warn"

[picker]
sources = ["active-minor-modes"]

[modes.abbrev-mode]
description = "global"

[modes.hl-line-mode]
description = "only global"
`)
	repoPath := writeRepoConfig(t, repoRoot, `
[modes.abbrev-mode]
description = "repo"
toggle = false
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{domain.SourceActiveMinorModes}, cfg.Picker.Sources)
	assert.Equal(t, "repo", cfg.Modes["abbrev-mode"].Description)
	assert.False(t, cfg.Modes["abbrev-mode"].Toggle)
	assert.Equal(t, repoPath, cfg.Modes["abbrev-mode"].Definition.File)
	assert.Equal(t, "only global", cfg.Modes["hl-line-mode"].Description)
}

func TestLoader_Load_PickerActions(t *testing.T) {
	repoRoot := t.TempDir()
	writeRepoConfig(t, repoRoot, `
[picker.actions]
inactive-minor-modes = [{ id = "turn-on", label = "Enable" }, "describe"]
major-mode = ["find"]
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []domain.ActionRef{
		{ID: domain.ActionTurnOn, Label: "Enable"},
		{ID: domain.ActionDescribe},
	}, cfg.Picker.Actions[domain.SourceInactiveMinorModes])
	assert.Equal(t, []domain.ActionRef{{ID: domain.ActionFind}}, cfg.Picker.Actions[domain.SourceMajorMode])
	// Sources without an override keep the default menu.
	assert.Equal(t, domain.DefaultActions()[domain.SourceActiveMinorModes], cfg.Picker.Actions[domain.SourceActiveMinorModes])
}

func TestLoader_Load_Warnings(t *testing.T) {
	repoRoot := t.TempDir()
	writeRepoConfig(t, repoRoot, `
[log]
level = "debug"
color = true

[picker]
height = 10

[modes.bogus-mode]
kind = "medium"

[modes.ok-mode]
colour = "red"

[extra]
foo = 1
`)

	cfg, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid kind in [modes.bogus-mode]: medium",
		"unknown key in [log]: color",
		"unknown key in [modes.ok-mode]: colour",
		"unknown key in [picker]: height",
		"unknown section: extra",
	}, cfg.Warnings)
	assert.NotContains(t, cfg.Modes, "bogus-mode")
	assert.Contains(t, cfg.Modes, "ok-mode")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	repoRoot := t.TempDir()
	writeRepoConfig(t, repoRoot, "[log\nlevel = ")

	_, err := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).Load()
	assert.Error(t, err)
}

func TestLoader_LoadRepo_OutsideRepository(t *testing.T) {
	_, err := NewLoaderWithGlobalDir("", t.TempDir()).LoadRepo()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIndexTables(t *testing.T) {
	data := []byte(`[modes]

[modes.a]
kind = "major"

[modes.a.options]
x = 1

  [modes."b.c"]

[modes."b.c".options]
[modes.a.other]
`)

	idx := indexTables(data)

	assert.Equal(t, map[string]int{"a": 3, "b.c": 9}, idx.modes)
	assert.Equal(t, map[string]int{"a": 6, "b.c": 11}, idx.options)
}
