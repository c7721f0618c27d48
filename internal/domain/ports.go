package domain

// ModeHost is the host environment the picker inspects and acts on.
// It is the only way the rest of the program reads or changes mode state;
// names are resolved to modes here, never by ad hoc lookups elsewhere.
type ModeHost interface {
	// AllMinorModes returns the names of every known minor mode.
	AllMinorModes() ([]string, error)

	// CurrentMajorMode returns the major mode of the current context.
	CurrentMajorMode() (string, error)

	// IsActive reports whether a minor mode is on.
	IsActive(name string) (bool, error)

	// SetActive turns a minor mode on or off.
	SetActive(name string, on bool) error

	// SetMajorMode switches the current major mode.
	SetMajorMode(name string) error

	// SetDefaultMajorMode records the major mode new contexts start in.
	SetDefaultMajorMode(name string) error

	// Lookup resolves a mode by name. Returns ErrModeNotFound if unknown.
	Lookup(name string) (*Mode, error)
}

// StateStore persists ModeState.
type StateStore interface {
	// Load returns the stored state, or an empty state if none was saved.
	Load() (*ModeState, error)

	// Save replaces the stored state.
	Save(state *ModeState) error

	// Initialize prepares the backing storage.
	Initialize() error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default + global + repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadRepo returns only the repository configuration.
	LoadRepo() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetRepoConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitRepoConfig() error
	InitGlobalConfig() error
}

// Presenter performs the user-facing side effects of mode actions.
type Presenter interface {
	// ShowHelp displays help text for a mode.
	ShowHelp(title, body string)

	// Open shows a file location to the user, usually in an editor.
	Open(loc Location) error
}

// Logger writes scoped log lines.
// scope is "" for global entries or a session scope from SessionScope.
type Logger interface {
	Debug(scope, category, msg string)
	Info(scope, category, msg string)
	Warn(scope, category, msg string)
	Error(scope, category, msg string)
}
