// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// MockModeHost is a test double for domain.ModeHost.
// Fields are ordered to minimize memory padding.
type MockModeHost struct {
	Modes         map[string]*domain.Mode
	Active        map[string]bool
	SetActiveErrs map[string]error // Per-mode errors returned by SetActive
	AllErr        error
	MajorErr      error
	SetMajorErr   error
	Major         string
	DefaultMajor  string
	SetCalls      []SetActiveCall
}

// SetActiveCall records one SetActive invocation.
type SetActiveCall struct {
	Name string
	On   bool
}

// NewMockModeHost creates a host with the given major mode and minor modes.
// Minor modes listed in active start on.
func NewMockModeHost(major string, minor []string, active ...string) *MockModeHost {
	m := &MockModeHost{
		Modes:         make(map[string]*domain.Mode),
		Active:        make(map[string]bool),
		SetActiveErrs: make(map[string]error),
		Major:         major,
	}
	if major != "" {
		m.Modes[major] = &domain.Mode{Name: major, Kind: domain.KindMajor}
	}
	for _, name := range minor {
		m.Modes[name] = &domain.Mode{Name: name, Kind: domain.KindMinor, Toggle: true}
	}
	for _, name := range active {
		m.Active[name] = true
	}
	return m
}

// AllMinorModes returns minor mode names in sorted order.
func (m *MockModeHost) AllMinorModes() ([]string, error) {
	if m.AllErr != nil {
		return nil, m.AllErr
	}
	var names []string
	for name, mode := range m.Modes {
		if mode.IsMinor() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// CurrentMajorMode returns the configured major mode.
func (m *MockModeHost) CurrentMajorMode() (string, error) {
	if m.MajorErr != nil {
		return "", m.MajorErr
	}
	if m.Major == "" {
		return "", domain.ErrNoMajorMode
	}
	return m.Major, nil
}

// IsActive reports whether a minor mode is on.
func (m *MockModeHost) IsActive(name string) (bool, error) {
	if _, err := m.Lookup(name); err != nil {
		return false, err
	}
	return m.Active[name], nil
}

// SetActive records the call and updates Active.
func (m *MockModeHost) SetActive(name string, on bool) error {
	m.SetCalls = append(m.SetCalls, SetActiveCall{Name: name, On: on})
	if err := m.SetActiveErrs[name]; err != nil {
		return err
	}
	mode, err := m.Lookup(name)
	if err != nil {
		return err
	}
	if !mode.Toggle {
		return fmt.Errorf("%w: %s", domain.ErrModeNotToggleable, name)
	}
	m.Active[name] = on
	return nil
}

// SetMajorMode sets Major.
func (m *MockModeHost) SetMajorMode(name string) error {
	if m.SetMajorErr != nil {
		return m.SetMajorErr
	}
	m.Major = name
	return nil
}

// SetDefaultMajorMode sets DefaultMajor.
func (m *MockModeHost) SetDefaultMajorMode(name string) error {
	if m.SetMajorErr != nil {
		return m.SetMajorErr
	}
	m.DefaultMajor = name
	return nil
}

// Lookup returns the mode or ErrModeNotFound.
func (m *MockModeHost) Lookup(name string) (*domain.Mode, error) {
	mode, ok := m.Modes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModeNotFound, name)
	}
	return mode, nil
}

// MockStateStore is a test double for domain.StateStore.
type MockStateStore struct {
	State       *domain.ModeState
	LoadErr     error
	SaveErr     error
	InitErr     error
	Saves       int
	Initializes int
}

// NewMockStateStore creates a store holding an empty state.
func NewMockStateStore() *MockStateStore {
	return &MockStateStore{State: domain.NewModeState()}
}

// Load returns a copy of State.
func (m *MockStateStore) Load() (*domain.ModeState, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.State.Clone(), nil
}

// Save replaces State.
func (m *MockStateStore) Save(state *domain.ModeState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state.Clone()
	m.Saves++
	return nil
}

// Initialize counts calls and returns InitErr.
func (m *MockStateStore) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initializes++
	return nil
}

// MockPresenter is a test double for domain.Presenter.
type MockPresenter struct {
	OpenErr error
	Helps   []Help
	Opened  []domain.Location
}

// Help records one ShowHelp call.
type Help struct {
	Title string
	Body  string
}

// ShowHelp records the help text.
func (m *MockPresenter) ShowHelp(title, body string) {
	m.Helps = append(m.Helps, Help{Title: title, Body: body})
}

// Open records the location.
func (m *MockPresenter) Open(loc domain.Location) error {
	if m.OpenErr != nil {
		return m.OpenErr
	}
	m.Opened = append(m.Opened, loc)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Global *domain.Config
	Repo   *domain.Config
	Err    error
}

// Load returns Config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns Global.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Global, nil
}

// LoadRepo returns Repo.
func (m *MockConfigLoader) LoadRepo() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Repo, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	RepoInfo    domain.ConfigInfo
	GlobalInfo  domain.ConfigInfo
	RepoInits   int
	GlobalInits int
}

// GetRepoConfigInfo returns RepoInfo.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo { return m.RepoInfo }

// GetGlobalConfigInfo returns GlobalInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitRepoConfig counts the call.
func (m *MockConfigManager) InitRepoConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.RepoInits++
	m.RepoInfo.Exists = true
	return nil
}

// InitGlobalConfig counts the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.GlobalInits++
	m.GlobalInfo.Exists = true
	return nil
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// Compile-time interface checks.
var (
	_ domain.ModeHost      = (*MockModeHost)(nil)
	_ domain.StateStore    = (*MockStateStore)(nil)
	_ domain.Presenter     = (*MockPresenter)(nil)
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
	_ domain.Logger        = NopLogger{}
)
