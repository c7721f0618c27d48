// Package host implements domain.ModeHost over configured mode definitions
// and a persisted state store.
package host

import (
	"fmt"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// Ensure Host implements domain.ModeHost.
var _ domain.ModeHost = (*Host)(nil)

// Host resolves mode names against the configuration and reads or writes
// their on/off state through a StateStore.
type Host struct {
	cfg    *domain.Config
	store  domain.StateStore
	logger domain.Logger
}

// New creates a Host.
func New(cfg *domain.Config, store domain.StateStore, logger domain.Logger) *Host {
	return &Host{cfg: cfg, store: store, logger: logger}
}

// AllMinorModes returns every declared minor mode in sorted order,
// including status-only modes that cannot be toggled.
func (h *Host) AllMinorModes() ([]string, error) {
	return h.cfg.MinorModeNames(), nil
}

// CurrentMajorMode returns the major mode of the current context.
// It prefers the stored major mode, then the stored default, then
// [context] major from configuration.
func (h *Host) CurrentMajorMode() (string, error) {
	state, err := h.store.Load()
	if err != nil {
		return "", fmt.Errorf("load state: %w", err)
	}
	for _, name := range []string{state.Major, state.DefaultMajor, h.cfg.Context.Major} {
		if name == "" {
			continue
		}
		if m, ok := h.cfg.Modes[name]; ok && m.IsMajor() {
			return name, nil
		}
		h.logger.Debug("", "host", fmt.Sprintf("ignoring undeclared major mode %q", name))
	}
	return "", domain.ErrNoMajorMode
}

// IsActive reports whether a minor mode is on.
func (h *Host) IsActive(name string) (bool, error) {
	m, err := h.Lookup(name)
	if err != nil {
		return false, err
	}
	if !m.IsMinor() {
		return false, fmt.Errorf("%w: %s", domain.ErrNotMinorMode, name)
	}
	state, err := h.store.Load()
	if err != nil {
		return false, fmt.Errorf("load state: %w", err)
	}
	return state.IsActive(name), nil
}

// SetActive turns a minor mode on or off.
func (h *Host) SetActive(name string, on bool) error {
	m, err := h.Lookup(name)
	if err != nil {
		return err
	}
	if !m.IsMinor() {
		return fmt.Errorf("%w: %s", domain.ErrNotMinorMode, name)
	}
	if !m.Toggle {
		return fmt.Errorf("%w: %s", domain.ErrModeNotToggleable, name)
	}

	state, err := h.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	state.SetActive(name, on)
	if err := h.store.Save(state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	h.logger.Info("", "host", fmt.Sprintf("%s %s", name, onOff(on)))
	return nil
}

// SetMajorMode switches the current major mode.
func (h *Host) SetMajorMode(name string) error {
	return h.updateMajor(name, func(s *domain.ModeState) { s.Major = name })
}

// SetDefaultMajorMode records the major mode new contexts start in.
func (h *Host) SetDefaultMajorMode(name string) error {
	return h.updateMajor(name, func(s *domain.ModeState) { s.DefaultMajor = name })
}

func (h *Host) updateMajor(name string, apply func(*domain.ModeState)) error {
	m, err := h.Lookup(name)
	if err != nil {
		return err
	}
	if !m.IsMajor() {
		return fmt.Errorf("%w: %s", domain.ErrNotMajorMode, name)
	}

	state, err := h.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	apply(state)
	if err := h.store.Save(state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	h.logger.Info("", "host", fmt.Sprintf("major mode %s", name))
	return nil
}

// Lookup resolves a mode by name.
func (h *Host) Lookup(name string) (*domain.Mode, error) {
	if err := domain.ValidateModeName(name); err != nil {
		return nil, err
	}
	m, ok := h.cfg.Modes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModeNotFound, name)
	}
	m.Name = name
	return &m, nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
