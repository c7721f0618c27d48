package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuchunyang/helm-describe-modes/internal/app"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// newConfigTestContainer creates an app.Container over a fresh repository
// with the global config and state directories isolated in temp dirs.
func newConfigTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()

	repoRoot := t.TempDir()
	_, err := git.PlainInit(repoRoot, false)
	require.NoError(t, err)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	c, err := app.New(repoRoot)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, repoRoot
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	out, _, err := execute(t, nil, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "template")
	assert.Contains(t, out, "init")
}

func TestConfigTemplateCommand(t *testing.T) {
	out, _, err := execute(t, nil, "config", "template")

	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(), out)
}

func TestConfigShowCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n")
	assert.Contains(t, out, "- /home/u/.config/describe-modes/config.toml (not found)\n")
	assert.Contains(t, out, "- /repo/.modes.toml\n")
	assert.Contains(t, out, "[Effective Config]\n")
	assert.Contains(t, out, "[modes.flyspell-mode]")
	assert.Contains(t, out, "[modes.abbrev-mode.options]")
	assert.Contains(t, out, "save-abbrevs = true")
	assert.Contains(t, out, "inactive-minor-modes")
	assert.Contains(t, out, "turn-on")
}

func TestConfigInitCommand(t *testing.T) {
	c, repoRoot := newConfigTestContainer(t)
	path := filepath.Join(repoRoot, domain.RepoConfigFileName)

	out, _, err := execute(t, c, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Created config: "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.RenderConfigTemplate(), string(data))

	repo, err := git.PlainOpen(repoRoot)
	require.NoError(t, err)
	_, err = repo.Reference(plumbing.ReferenceName("refs/"+domain.DefaultNamespace+"/initialized"), true)
	assert.NoError(t, err, "state store should be initialized")

	_, _, err = execute(t, c, "config", "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Contains(t, err.Error(), path)
}

func TestConfigInitCommand_Global(t *testing.T) {
	c, _ := newConfigTestContainer(t)

	out, _, err := execute(t, c, "config", "init", "--global")

	require.NoError(t, err)
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), domain.AppDirName, domain.ConfigFileName)
	assert.Equal(t, "Created config: "+path+"\n", out)
	assert.FileExists(t, path)
}
