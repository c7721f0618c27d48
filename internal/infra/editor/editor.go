// Package editor opens file locations in the user's editor and prints help
// text to the terminal.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// defaultEditor is used when neither VISUAL nor EDITOR is set.
const defaultEditor = "vi"

// Editor builds and runs editor commands.
type Editor struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	command string
}

// New creates an Editor using $VISUAL, then $EDITOR, then vi.
func New() *Editor {
	command := os.Getenv("VISUAL")
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	return NewWithCommand(command)
}

// NewWithCommand creates an Editor running command.
func NewWithCommand(command string) *Editor {
	if strings.TrimSpace(command) == "" {
		command = defaultEditor
	}
	return &Editor{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Args returns the argv that opens loc.
// Editors from the VS Code family take "-g file:line"; everything else
// gets the "+line file" convention understood by vi, emacs and nano.
func (e *Editor) Args(loc domain.Location) ([]string, error) {
	if loc.IsZero() {
		return nil, domain.ErrNoDefinition
	}
	argv, err := shlex.Split(e.command)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", domain.ErrEditorUnavailable, e.command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command", domain.ErrEditorUnavailable)
	}

	if loc.Line <= 0 {
		return append(argv, loc.File), nil
	}
	switch filepath.Base(argv[0]) {
	case "code", "code-insiders", "codium", "cursor":
		return append(argv, "-g", loc.File+":"+strconv.Itoa(loc.Line)), nil
	}
	return append(argv, "+"+strconv.Itoa(loc.Line), loc.File), nil
}

// Command returns an unstarted command that opens loc, attached to the
// editor's terminal streams.
func (e *Editor) Command(loc domain.Location) (*exec.Cmd, error) {
	argv, err := e.Args(loc)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(argv[0], argv[1:]...) //nolint:gosec // editor command comes from the user's environment
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	return cmd, nil
}

// Open opens loc and waits for the editor to exit.
func (e *Editor) Open(loc domain.Location) error {
	cmd, err := e.Command(loc)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", cmd.Path, err)
	}
	return nil
}
