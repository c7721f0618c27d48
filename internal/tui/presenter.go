package tui

import (
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// Ensure Presenter implements domain.Presenter.
var _ domain.Presenter = (*Presenter)(nil)

// Help is help text produced by a describe action.
type Help struct {
	Title string
	Body  string
}

// Presenter collects the output of mode actions while the picker owns the
// terminal. Help shown by a persistent action goes to the preview pane;
// everything else is handed back to the caller when the program exits.
// It is not safe for concurrent use.
type Presenter struct {
	helps     []Help
	locations []domain.Location
}

// NewPresenter creates an empty Presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// ShowHelp records help text.
func (p *Presenter) ShowHelp(title, body string) {
	p.helps = append(p.helps, Help{Title: title, Body: body})
}

// Open records a location to be opened after the picker exits.
func (p *Presenter) Open(loc domain.Location) error {
	if loc.IsZero() {
		return domain.ErrNoDefinition
	}
	p.locations = append(p.locations, loc)
	return nil
}

// drain returns and clears everything recorded so far.
func (p *Presenter) drain() ([]Help, []domain.Location) {
	helps, locs := p.helps, p.locations
	p.helps, p.locations = nil, nil
	return helps, locs
}
