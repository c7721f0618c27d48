package domain

import (
	"path/filepath"
	"strings"
)

// File and directory names.
const (
	AppDirName         = "describe-modes"
	ConfigFileName     = "config.toml" // Global config file name
	RepoConfigFileName = ".modes.toml" // Config file name in repository root
	StateFileName      = "state.json"
	LogFileName        = "describe-modes.log"
	DefaultNamespace   = "modes"
)

// RepoDataDir returns the directory for per-repository data (json state, logs).
func RepoDataDir(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", AppDirName)
}

// RepoConfigPath returns the repository config path.
func RepoConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RepoConfigFileName)
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// GlobalDataDir returns the data directory used outside git repositories.
// stateHome is typically XDG_STATE_HOME or ~/.local/state.
func GlobalDataDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// StatePath returns the path to the JSON state file.
func StatePath(dataDir string) string {
	return filepath.Join(dataDir, StateFileName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

// SessionScope returns the log scope for a picker session id.
// Format: session-<first 8 chars of id>
func SessionScope(sessionID string) string {
	id := strings.ReplaceAll(sessionID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "session-" + id
}
