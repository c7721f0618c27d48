package domain

// ModeState is the persisted on/off state of a context's modes.
// Fields are ordered to minimize memory padding.
type ModeState struct {
	Minor        map[string]bool `json:"minor" yaml:"minor"`
	Major        string          `json:"major" yaml:"major"`
	DefaultMajor string          `json:"defaultMajor,omitempty" yaml:"defaultMajor,omitempty"`
}

// NewModeState returns an empty state.
func NewModeState() *ModeState {
	return &ModeState{Minor: make(map[string]bool)}
}

// IsActive reports whether a minor mode is on.
func (s *ModeState) IsActive(name string) bool {
	if s == nil || s.Minor == nil {
		return false
	}
	return s.Minor[name]
}

// SetActive records a minor mode as on or off.
// Off entries are removed so the state stays small.
func (s *ModeState) SetActive(name string, on bool) {
	if s.Minor == nil {
		s.Minor = make(map[string]bool)
	}
	if on {
		s.Minor[name] = true
		return
	}
	delete(s.Minor, name)
}

// Clone returns a deep copy.
func (s *ModeState) Clone() *ModeState {
	if s == nil {
		return NewModeState()
	}
	c := &ModeState{
		Major:        s.Major,
		DefaultMajor: s.DefaultMajor,
		Minor:        make(map[string]bool, len(s.Minor)),
	}
	for k, v := range s.Minor {
		c.Minor[k] = v
	}
	return c
}
