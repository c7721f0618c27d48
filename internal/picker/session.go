package picker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	StateClosed State = iota
	StateOpen
	StateDispatching
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateDispatching:
		return "dispatching"
	}
	return "unknown"
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger *slog.Logger
	query  string
}

// WithLogger logs transitions and notifications through logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithQuery sets the initial query.
func WithQuery(query string) Option {
	return func(o *options) {
		o.query = query
	}
}

// Outcome describes the last dispatch of a session.
type Outcome struct {
	Err        error
	Source     string
	Action     string
	Values     []string
	Persistent bool
}

// Selection is the dispatch target computed from the cursor and marks.
type Selection struct {
	Source string
	Values []string
	// CrossSource is true when marks exist in sources other than the
	// cursor's. Those marks are not dispatched.
	CrossSource bool
}

// Row is one rendered line of a Group.
type Row struct {
	Match   Match
	Marked  bool
	Current bool
}

// Group is the filtered view of one source.
type Group struct {
	Name   string
	Rows   []Row
	NoMark bool
}

type cursor struct {
	src   int // index into Session.sources
	row   int // index into Session.views[src]
	valid bool
}

// Session is one interactive selection over a fixed list of sources.
// A Session is not safe for concurrent use.
type Session struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
	outcome    *Outcome
	id         string
	query      string
	sources    []*Source
	views      [][]Match
	marks      []map[int]struct{} // per source, keyed by original candidate index
	pending    []Notification
	cursor     cursor
	state      State
}

// Open builds every source and opens a session over those that succeeded.
// Failed builders are reported as warning notifications. When no source
// could be built, Open returns an error wrapping ErrAllSourcesFailed.
func Open(ctx context.Context, builders []Builder, opts ...Option) (*Session, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.NewString()
	logger := o.logger.With("session", id)

	s := &Session{
		id:         id,
		logger:     logger,
		dispatcher: NewDispatcher(logger),
	}

	if len(builders) == 0 {
		return nil, fmt.Errorf("%w: no sources configured", ErrAllSourcesFailed)
	}

	var failures []error
	names := make(map[string]struct{}, len(builders))
	for _, b := range builders {
		src, err := build(ctx, b)
		if err == nil {
			if _, dup := names[src.Name]; dup {
				err = &SourceBuildError{Source: src.Name, Err: ErrDuplicateSource}
			}
		}
		if err != nil {
			failures = append(failures, err)
			s.notify(notificationFor(err))
			continue
		}
		names[src.Name] = struct{}{}
		s.sources = append(s.sources, src)
	}

	if len(s.sources) == 0 {
		logger.Error("no source could be built", "builders", len(builders))
		return nil, fmt.Errorf("%w: %w", ErrAllSourcesFailed, errors.Join(failures...))
	}

	s.views = make([][]Match, len(s.sources))
	s.marks = make([]map[int]struct{}, len(s.sources))
	for i := range s.sources {
		s.marks[i] = make(map[int]struct{})
	}
	s.state = StateOpen
	s.refilter(o.query)
	logger.Info("session opened", "sources", len(s.sources), "failed", len(failures))
	return s, nil
}

// build runs one builder, converting errors, panics and invalid sources into
// a SourceBuildError.
func build(ctx context.Context, b Builder) (src *Source, err error) {
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = &SourceBuildError{Source: b.ID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if b.Build == nil {
		return nil, &SourceBuildError{Source: b.ID, Err: errors.New("no build function")}
	}
	src, err = b.Build(ctx)
	if err != nil {
		return nil, &SourceBuildError{Source: b.ID, Err: err}
	}
	if src == nil {
		return nil, &SourceBuildError{Source: b.ID, Err: errors.New("builder returned no source")}
	}
	if src.Transformer != nil {
		src.Candidates = src.Transformer(src.Candidates)
	}
	if err := src.Validate(); err != nil {
		name := src.Name
		if name == "" {
			name = b.ID
		}
		return nil, &SourceBuildError{Source: name, Err: err}
	}
	return src, nil
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Query returns the current query.
func (s *Session) Query() string { return s.query }

// Sources returns the names of the sources in display order.
func (s *Session) Sources() []string {
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name
	}
	return names
}

// Empty reports whether no row is visible in any source.
func (s *Session) Empty() bool {
	return !s.cursor.valid
}

// Outcome returns the last dispatch, or nil if nothing was dispatched.
func (s *Session) Outcome() *Outcome { return s.outcome }

// Notifications returns and clears pending notifications.
func (s *Session) Notifications() []Notification {
	n := s.pending
	s.pending = nil
	return n
}

// SetQuery re-filters every source. The cursor stays on the same candidate
// when it is still visible, otherwise it moves to the first visible row.
func (s *Session) SetQuery(query string) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if query == s.query {
		return nil
	}
	s.refilter(query)
	return nil
}

func (s *Session) refilter(query string) {
	prevSrc, prevIndex := -1, -1
	if s.cursor.valid {
		prevSrc = s.cursor.src
		prevIndex = s.views[s.cursor.src][s.cursor.row].Index
	}

	s.query = query
	for i, src := range s.sources {
		s.views[i] = Filter(src.Candidates, query)
	}

	if prevSrc >= 0 {
		for row, m := range s.views[prevSrc] {
			if m.Index == prevIndex {
				s.cursor = cursor{src: prevSrc, row: row, valid: true}
				return
			}
		}
	}
	s.cursor = cursor{}
	for i, v := range s.views {
		if len(v) > 0 {
			s.cursor = cursor{src: i, row: 0, valid: true}
			return
		}
	}
}

// Groups returns the filtered view of every source in display order.
func (s *Session) Groups() []Group {
	if s.state == StateClosed {
		return nil
	}
	groups := make([]Group, len(s.sources))
	for i, src := range s.sources {
		rows := make([]Row, len(s.views[i]))
		for r, m := range s.views[i] {
			_, marked := s.marks[i][m.Index]
			rows[r] = Row{
				Match:   m,
				Marked:  marked,
				Current: s.cursor.valid && s.cursor.src == i && s.cursor.row == r,
			}
		}
		groups[i] = Group{Name: src.Name, Rows: rows, NoMark: src.NoMark}
	}
	return groups
}

// Current returns the source name and candidate under the cursor.
func (s *Session) Current() (string, Candidate, bool) {
	if s.state == StateClosed || !s.cursor.valid {
		return "", Candidate{}, false
	}
	return s.sources[s.cursor.src].Name, s.views[s.cursor.src][s.cursor.row].Candidate, true
}

// Actions returns the menu labels of the cursor's source.
func (s *Session) Actions() []string {
	if s.state == StateClosed || !s.cursor.valid {
		return nil
	}
	return s.sources[s.cursor.src].Labels()
}

// HasPersistent reports whether the cursor's source has a persistent action.
func (s *Session) HasPersistent() bool {
	if s.state == StateClosed || !s.cursor.valid {
		return false
	}
	return s.sources[s.cursor.src].Persistent != nil
}

// MarkedCount returns the number of marks in all sources.
func (s *Session) MarkedCount() int {
	n := 0
	for _, m := range s.marks {
		n += len(m)
	}
	return n
}

// flat returns the cursor position in the concatenated view and its length.
func (s *Session) flat() (int, int) {
	pos, total := -1, 0
	for i, v := range s.views {
		if s.cursor.valid && i == s.cursor.src {
			pos = total + s.cursor.row
		}
		total += len(v)
	}
	return pos, total
}

func (s *Session) moveTo(pos int) {
	for i, v := range s.views {
		if pos < len(v) {
			s.cursor = cursor{src: i, row: pos, valid: true}
			return
		}
		pos -= len(v)
	}
}

// Next moves the cursor down one row, wrapping to the first row.
func (s *Session) Next() error {
	return s.step(1)
}

// Prev moves the cursor up one row, wrapping to the last row.
func (s *Session) Prev() error {
	return s.step(-1)
}

func (s *Session) step(delta int) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	pos, total := s.flat()
	if total == 0 || pos < 0 {
		return nil
	}
	s.moveTo(((pos+delta)%total + total) % total)
	return nil
}

// First moves the cursor to the first visible row.
func (s *Session) First() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if _, total := s.flat(); total > 0 {
		s.moveTo(0)
	}
	return nil
}

// Last moves the cursor to the last visible row.
func (s *Session) Last() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if _, total := s.flat(); total > 0 {
		s.moveTo(total - 1)
	}
	return nil
}

// NextSource moves the cursor to the first row of the next non-empty
// source, wrapping around.
func (s *Session) NextSource() error {
	return s.jumpSource(1)
}

// PrevSource moves the cursor to the first row of the previous non-empty
// source, wrapping around.
func (s *Session) PrevSource() error {
	return s.jumpSource(-1)
}

func (s *Session) jumpSource(delta int) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid {
		return nil
	}
	n := len(s.sources)
	for step := 1; step <= n; step++ {
		i := ((s.cursor.src+delta*step)%n + n) % n
		if len(s.views[i]) > 0 {
			s.cursor = cursor{src: i, row: 0, valid: true}
			return nil
		}
	}
	return nil
}

// ToggleMark toggles the mark on the cursor row.
// It does nothing on NoMark sources.
func (s *Session) ToggleMark() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid || s.sources[s.cursor.src].NoMark {
		return nil
	}
	idx := s.views[s.cursor.src][s.cursor.row].Index
	marks := s.marks[s.cursor.src]
	if _, ok := marks[idx]; ok {
		delete(marks, idx)
	} else {
		marks[idx] = struct{}{}
	}
	return nil
}

// MarkAll marks every visible row of the cursor's source.
func (s *Session) MarkAll() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid || s.sources[s.cursor.src].NoMark {
		return nil
	}
	for _, m := range s.views[s.cursor.src] {
		s.marks[s.cursor.src][m.Index] = struct{}{}
	}
	return nil
}

// UnmarkAll clears the marks of every source.
func (s *Session) UnmarkAll() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	for i := range s.marks {
		clear(s.marks[i])
	}
	return nil
}

// Selection computes what an action would receive.
//
// On a NoMark source it is the cursor row. Otherwise it is the marked rows
// of the cursor's source that are visible under the current query, in view
// order, or the cursor row when none are. ok is false when there is no
// cursor.
func (s *Session) Selection() (Selection, bool) {
	if s.state == StateClosed || !s.cursor.valid {
		return Selection{}, false
	}
	src := s.sources[s.cursor.src]
	current := s.views[s.cursor.src][s.cursor.row].Candidate.Value
	sel := Selection{Source: src.Name, Values: []string{current}}

	for i, m := range s.marks {
		if i != s.cursor.src && len(m) > 0 {
			sel.CrossSource = true
			break
		}
	}
	if src.NoMark {
		return sel, true
	}

	var marked []string
	for _, m := range s.views[s.cursor.src] {
		if _, ok := s.marks[s.cursor.src][m.Index]; ok {
			marked = append(marked, m.Candidate.Value)
		}
	}
	if len(marked) > 0 {
		sel.Values = marked
	}
	return sel, true
}

// Accept runs the default action of the cursor's source and closes the
// session. It does nothing when no row is visible.
func (s *Session) Accept(ctx context.Context) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid {
		return nil
	}
	return s.run(ctx, s.sources[s.cursor.src].DefaultAction().Label)
}

// Execute runs the action labelled label. The session closes afterwards
// unless label names the source's persistent action.
func (s *Session) Execute(ctx context.Context, label string) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid {
		return nil
	}
	return s.run(ctx, label)
}

// Preview runs the persistent action of the cursor's source and keeps the
// session open with its cursor and marks.
func (s *Session) Preview(ctx context.Context) error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	if !s.cursor.valid {
		return nil
	}
	src := s.sources[s.cursor.src]
	if src.Persistent == nil {
		s.notify(Notification{Level: LevelInfo, Message: fmt.Sprintf("no persistent action for %s", src.Name)})
		return nil
	}
	return s.dispatch(ctx, src, *src.Persistent, true)
}

func (s *Session) run(ctx context.Context, label string) error {
	src := s.sources[s.cursor.src]
	action, persistent, ok := src.lookup(label)
	if !ok {
		err := &UnknownActionError{Source: src.Name, Label: label}
		sel, _ := s.Selection()
		s.outcome = &Outcome{Source: src.Name, Action: label, Values: sel.Values, Err: err}
		s.notify(notificationFor(err))
		s.close("unknown action")
		return nil
	}
	return s.dispatch(ctx, src, action, persistent)
}

func (s *Session) dispatch(ctx context.Context, src *Source, action Action, persistent bool) error {
	sel, _ := s.Selection()
	if sel.CrossSource {
		s.notify(Notification{Level: LevelWarning, Message: crossSourceMessage})
	}

	s.state = StateDispatching
	err := s.dispatcher.invoke(ctx, src, action, sel.Values)
	s.outcome = &Outcome{
		Source:     src.Name,
		Action:     action.Label,
		Values:     sel.Values,
		Err:        err,
		Persistent: persistent,
	}
	if err != nil {
		s.notify(notificationFor(err))
	}

	if persistent {
		s.state = StateOpen
		return nil
	}
	s.close("dispatched")
	return nil
}

// Cancel closes the session and discards marks.
func (s *Session) Cancel() error {
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	s.close("cancelled")
	return nil
}

// close releases all per-session state. Outcome and pending notifications
// are kept for the caller.
func (s *Session) close(reason string) {
	s.state = StateClosed
	s.sources = nil
	s.views = nil
	s.marks = nil
	s.cursor = cursor{}
	s.logger.Info("session closed", "reason", reason)
}

func (s *Session) notify(n Notification) {
	switch n.Level {
	case LevelError:
		s.logger.Error(n.Message)
	case LevelWarning:
		s.logger.Warn(n.Message)
	default:
		s.logger.Info(n.Message)
	}
	s.pending = append(s.pending, n)
}
