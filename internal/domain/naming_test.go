package domain

import "testing"

func TestRepoDataDir(t *testing.T) {
	got := RepoDataDir("/home/user/project")
	want := "/home/user/project/.git/describe-modes"
	if got != want {
		t.Errorf("RepoDataDir() = %q, want %q", got, want)
	}
}

func TestRepoConfigPath(t *testing.T) {
	got := RepoConfigPath("/home/user/project")
	want := "/home/user/project/.modes.toml"
	if got != want {
		t.Errorf("RepoConfigPath() = %q, want %q", got, want)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	got := GlobalConfigPath("/home/user/.config")
	want := "/home/user/.config/describe-modes/config.toml"
	if got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestStateAndLogPath(t *testing.T) {
	dir := GlobalDataDir("/home/user/.local/state")
	if got, want := StatePath(dir), "/home/user/.local/state/describe-modes/state.json"; got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}
	if got, want := LogPath(dir), "/home/user/.local/state/describe-modes/logs/describe-modes.log"; got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}

func TestSessionScope(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid", "3f2a9c1e-77aa-4b1c-9d2e-0123456789ab", "session-3f2a9c1e"},
		{"short", "ab-c", "session-abc"},
		{"empty", "", "session-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionScope(tt.id); got != tt.want {
				t.Errorf("SessionScope(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
