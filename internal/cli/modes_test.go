package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/usecase"
)

func TestListCommand_Table(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "MODE")
	assert.Regexp(t, `text-mode\s+major\s+current\s+-\s+Major mode for editing plain text\.`, out)
	assert.Regexp(t, `abbrev-mode\s+minor\s+on`, out)
	assert.Regexp(t, `flyspell-mode\s+minor\s+off\s+Fly\s+Spell checking`, out)
}

func TestListCommand_Filters(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "list", "--inactive")
	require.NoError(t, err)
	assert.Contains(t, out, "flyspell-mode")
	assert.NotContains(t, out, "abbrev-mode")
	assert.NotContains(t, out, "text-mode")

	_, _, err = execute(t, c, "list", "--active", "--inactive")
	assert.Error(t, err)
}

func TestListCommand_YAML(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "list", "--format", "yaml")
	require.NoError(t, err)

	var doc modesDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.NotNil(t, doc.Major)
	assert.Equal(t, "text-mode", doc.Major.Name)
	require.Len(t, doc.Minor, 3)
	assert.Equal(t, "flyspell-mode", doc.Minor[1].Name)
	assert.False(t, doc.Minor[1].Active)
	assert.Equal(t, "/repo/.modes.toml:12", doc.Minor[1].Definition)
}

func TestListCommand_UnknownFormat(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(t, c, "list", "--format", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "json"`)
}

func TestDescribeCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := execute(t, c, "describe", "abbrev-mode")

	require.NoError(t, err)
	assert.Contains(t, out, "abbrev-mode\n===========\n\n")
	assert.Contains(t, out, "It is currently enabled.")
	assert.Contains(t, out, "save-abbrevs = true")

	_, _, err = execute(t, c, "describe", "nope")
	assert.ErrorIs(t, err, domain.ErrModeNotFound)
}

func TestToggleCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOut    string
		wantActive bool
	}{
		{"flip", []string{"toggle", "flyspell-mode"}, "flyspell-mode turned on\n", true},
		{"force off", []string{"toggle", "flyspell-mode", "--off"}, "flyspell-mode is already off\n", false},
		{"force on", []string{"toggle", "abbrev-mode", "--on"}, "abbrev-mode is already on\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, host := newTestContainer(t)

			out, _, err := execute(t, c, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantActive, host.Active[tt.args[1]])
		})
	}
}

func TestToggleCommand_NotToggleable(t *testing.T) {
	c, host := newTestContainer(t)
	host.Modes["flyspell-mode"].Toggle = false

	_, _, err := execute(t, c, "toggle", "flyspell-mode")

	assert.ErrorIs(t, err, domain.ErrModeNotToggleable)
}

func TestMajorCommand(t *testing.T) {
	c, host := newTestContainer(t)
	host.Modes["prog-mode"] = &domain.Mode{Name: "prog-mode", Kind: domain.KindMajor}

	out, _, err := execute(t, c, "major")
	require.NoError(t, err)
	assert.Equal(t, "text-mode\n", out)

	out, _, err = execute(t, c, "major", "prog-mode")
	require.NoError(t, err)
	assert.Equal(t, "Switched to prog-mode (was text-mode)\n", out)
	assert.Equal(t, "prog-mode", host.Major)

	out, _, err = execute(t, c, "major", "text-mode", "--default")
	require.NoError(t, err)
	assert.Equal(t, "Default major mode set to text-mode\n", out)
	assert.Equal(t, "text-mode", host.DefaultMajor)
	assert.Equal(t, "prog-mode", host.Major)

	_, _, err = execute(t, c, "major", "--default")
	assert.Error(t, err)
}

func TestMajorCommand_NoMajorMode(t *testing.T) {
	c, host := newTestContainer(t)
	host.Major = ""

	_, _, err := execute(t, c, "major")

	assert.ErrorIs(t, err, domain.ErrNoMajorMode)
}

func TestFindCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	opened := stubOpener(t)

	out, _, err := execute(t, c, "find", "flyspell-mode", "--print")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.modes.toml:12\n", out)
	assert.Empty(t, *opened)

	_, _, err = execute(t, c, "find", "flyspell-mode")
	require.NoError(t, err)
	assert.Equal(t, []domain.Location{{File: "/repo/.modes.toml", Line: 12}}, *opened)

	_, _, err = execute(t, c, "find", "show-paren-mode")
	assert.ErrorIs(t, err, domain.ErrNoDefinition)
}

func TestCustomizeCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	opened := stubOpener(t)

	_, errOut, err := execute(t, c, "customize", "abbrev-mode")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, errOut, err = execute(t, c, "customize", "flyspell-mode")
	require.NoError(t, err)
	assert.Contains(t, errOut, "flyspell-mode has no options table")

	assert.Equal(t, []domain.Location{
		{File: "/repo/.modes.toml", Line: 21},
		{File: "/repo/.modes.toml", Line: 12},
	}, *opened)
}

func TestCompleteModes(t *testing.T) {
	c, _ := newTestContainer(t)

	names, _ := completeModes(c, (*domain.Mode).IsMinor)(nil, nil, "")
	assert.Equal(t, []string{"abbrev-mode", "flyspell-mode", "show-paren-mode"}, names)

	names, _ = completeModes(c, (*domain.Mode).IsMajor)(nil, nil, "")
	assert.Equal(t, []string{"text-mode"}, names)

	names, _ = completeModes(c, nil)(nil, []string{"already"}, "")
	assert.Empty(t, names)

	names, _ = completeModes(nil, nil)(nil, nil, "")
	assert.Empty(t, names)
}

func TestModeState(t *testing.T) {
	major := &domain.Mode{Name: "text-mode", Kind: domain.KindMajor}
	minor := &domain.Mode{Name: "abbrev-mode", Kind: domain.KindMinor, Toggle: true}
	fixed := &domain.Mode{Name: "read-only-mode", Kind: domain.KindMinor}

	tests := []struct {
		entry usecase.ModeEntry
		want  string
	}{
		{usecase.ModeEntry{Mode: major, Active: true}, "current"},
		{usecase.ModeEntry{Mode: minor, Active: true}, "on"},
		{usecase.ModeEntry{Mode: minor}, "off"},
		{usecase.ModeEntry{Mode: fixed, Active: true}, "on (fixed)"},
		{usecase.ModeEntry{Mode: fixed}, "off (fixed)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, modeState(tt.entry))
		})
	}
}
