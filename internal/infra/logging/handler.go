package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// SessionKey is the attribute that selects the session scope of an entry.
const SessionKey = "session"

// Handler adapts Logger to slog.Handler so that libraries logging through
// *slog.Logger end up in the same file with the same format.
type Handler struct {
	logger   *Logger
	category string
	scope    string
	prefix   string // group prefix for attribute keys
	attrs    []string
}

// Ensure Handler implements slog.Handler.
var _ slog.Handler = (*Handler)(nil)

// Handler returns an slog.Handler writing entries under category.
func (l *Logger) Handler(category string) *Handler {
	return &Handler{logger: l, category: category}
}

// Slog returns an *slog.Logger writing entries under category.
func (l *Logger) Slog(category string) *slog.Logger {
	return slog.New(l.Handler(category))
}

// Enabled reports whether the logger accepts entries at level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.enabled(level)
}

// Handle formats the record as "msg key=value ..." and writes it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	scope := h.scope
	attrs := append([]string{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == SessionKey && h.prefix == "" {
			scope = domain.SessionScope(a.Value.String())
			return true
		}
		attrs = append(attrs, formatAttr(h.prefix, a))
		return true
	})

	msg := r.Message
	if len(attrs) > 0 {
		msg += " " + strings.Join(attrs, " ")
	}
	h.logger.write(r.Time, r.Level, scope, h.category, msg)
	return nil
}

// WithAttrs returns a handler that adds attrs to every entry.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append([]string{}, h.attrs...)
	for _, a := range attrs {
		if a.Key == SessionKey && h.prefix == "" {
			c.scope = domain.SessionScope(a.Value.String())
			continue
		}
		c.attrs = append(c.attrs, formatAttr(h.prefix, a))
	}
	return &c
}

// WithGroup returns a handler that qualifies later attribute keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."
	return &c
}

func formatAttr(prefix string, a slog.Attr) string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		parts := make([]string, 0, len(v.Group()))
		for _, sub := range v.Group() {
			parts = append(parts, formatAttr(prefix+a.Key+".", sub))
		}
		return strings.Join(parts, " ")
	}
	s := v.String()
	if strings.ContainsAny(s, " \t\"=") {
		s = fmt.Sprintf("%q", s)
	}
	return prefix + a.Key + "=" + s
}
