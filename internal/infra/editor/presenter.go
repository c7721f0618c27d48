package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// Ensure Presenter implements domain.Presenter.
var _ domain.Presenter = (*Presenter)(nil)

// Opener opens a location.
type Opener interface {
	Open(loc domain.Location) error
}

// Presenter prints help to a writer and opens locations with an Opener.
// It serves the non-interactive commands.
type Presenter struct {
	out    io.Writer
	opener Opener
}

// NewPresenter creates a Presenter.
func NewPresenter(out io.Writer, opener Opener) *Presenter {
	return &Presenter{out: out, opener: opener}
}

// ShowHelp prints the title, an underline and the body.
func (p *Presenter) ShowHelp(title, body string) {
	_, _ = fmt.Fprintf(p.out, "%s\n%s\n\n%s\n", title, strings.Repeat("=", len(title)), strings.TrimRight(body, "\n"))
}

// Open delegates to the opener.
func (p *Presenter) Open(loc domain.Location) error {
	return p.opener.Open(loc)
}
