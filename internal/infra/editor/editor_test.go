package editor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/testutil"
)

func TestEditor_Args(t *testing.T) {
	loc := domain.Location{File: "/repo/.modes.toml", Line: 12}

	tests := []struct {
		name    string
		command string
		loc     domain.Location
		want    []string
	}{
		{"vi style", "vim", loc, []string{"vim", "+12", "/repo/.modes.toml"}},
		{"command with args", `emacsclient -t --alternate-editor=""`, loc, []string{"emacsclient", "-t", "--alternate-editor=", "+12", "/repo/.modes.toml"}},
		{"vscode", "/usr/local/bin/code --wait", loc, []string{"/usr/local/bin/code", "--wait", "-g", "/repo/.modes.toml:12"}},
		{"no line", "nano", domain.Location{File: "/a.toml"}, []string{"nano", "/a.toml"}},
		{"default", "", loc, []string{"vi", "+12", "/repo/.modes.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewWithCommand(tt.command).Args(tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEditor_Args_Errors(t *testing.T) {
	_, err := NewWithCommand("vim").Args(domain.Location{})
	assert.ErrorIs(t, err, domain.ErrNoDefinition)

	_, err = NewWithCommand(`vim "unterminated`).Args(domain.Location{File: "a"})
	assert.ErrorIs(t, err, domain.ErrEditorUnavailable)
}

func TestEditor_Open(t *testing.T) {
	ed := NewWithCommand("true")
	assert.NoError(t, ed.Open(domain.Location{File: "/dev/null", Line: 1}))

	ed = NewWithCommand("false")
	assert.Error(t, ed.Open(domain.Location{File: "/dev/null"}))
}

func TestPresenter(t *testing.T) {
	var buf bytes.Buffer
	opener := &testutil.MockPresenter{}
	p := NewPresenter(&buf, opener)

	p.ShowHelp("flyspell-mode", "Spell checking.\n")
	require.NoError(t, p.Open(domain.Location{File: "a.toml", Line: 3}))

	assert.Equal(t, "flyspell-mode\n=============\n\nSpell checking.\n", buf.String())
	assert.Equal(t, []domain.Location{{File: "a.toml", Line: 3}}, opener.Opened)
}
