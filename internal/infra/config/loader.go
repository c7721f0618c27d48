// Package config provides configuration loading functionality.
package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Repository root; empty outside a repository
	globalConfDir string // Path to global config directory (e.g., ~/.config/describe-modes)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default + global + repo).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.repoRoot == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.RepoConfigPath(l.repoRoot))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := convertRawToDomainConfig(raw)
	idx := indexTables(data)
	for name, m := range cfg.Modes {
		m.Definition = domain.Location{File: path, Line: idx.modes[name]}
		if line, ok := idx.options[name]; ok {
			m.OptionsAt = domain.Location{File: path, Line: line}
		}
		cfg.Modes[name] = m
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{
		Modes: make(map[string]domain.Mode),
	}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "picker":
			warnings = append(warnings, parsePickerSection(m, &res.Picker)...)
		case "context":
			for k, v := range m {
				switch k {
				case "major":
					if s, ok := v.(string); ok {
						res.Context.Major = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [context]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "state":
			for k, v := range m {
				switch k {
				case "store":
					if s, ok := v.(string); ok {
						res.State.Store = s
					}
				case "namespace":
					if s, ok := v.(string); ok {
						res.State.Namespace = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [state]: %s", k))
				}
			}
		case "modes":
			warnings = append(warnings, parseModesSection(m, res.Modes)...)
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parsePickerSection parses [picker] and [picker.actions].
func parsePickerSection(raw map[string]any, res *domain.PickerConfig) []string {
	var warnings []string
	for k, v := range raw {
		switch k {
		case "sources":
			list, ok := v.([]any)
			if !ok {
				warnings = append(warnings, "invalid value in [picker]: sources must be an array")
				continue
			}
			res.Sources = make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					res.Sources = append(res.Sources, s)
				}
			}
		case "actions":
			menus, ok := v.(map[string]any)
			if !ok {
				warnings = append(warnings, "invalid value in [picker]: actions must be a table")
				continue
			}
			res.Actions = make(map[string][]domain.ActionRef, len(menus))
			for source, entries := range menus {
				refs, ws := parseActionRefs(source, entries)
				res.Actions[source] = refs
				warnings = append(warnings, ws...)
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [picker]: %s", k))
		}
	}
	return warnings
}

// parseActionRefs parses one action menu. Entries are either an action ID
// string or a {id, label} table.
func parseActionRefs(source string, v any) ([]domain.ActionRef, []string) {
	list, ok := v.([]any)
	if !ok {
		return nil, []string{fmt.Sprintf("invalid value in [picker.actions]: %s must be an array", source)}
	}
	var warnings []string
	refs := make([]domain.ActionRef, 0, len(list))
	for _, item := range list {
		switch entry := item.(type) {
		case string:
			refs = append(refs, domain.ActionRef{ID: entry})
		case map[string]any:
			var ref domain.ActionRef
			for k, v := range entry {
				switch k {
				case "id":
					if s, ok := v.(string); ok {
						ref.ID = s
					}
				case "label":
					if s, ok := v.(string); ok {
						ref.Label = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [picker.actions.%s]: %s", source, k))
				}
			}
			refs = append(refs, ref)
		default:
			warnings = append(warnings, fmt.Sprintf("invalid entry in [picker.actions.%s]", source))
		}
	}
	return refs, warnings
}

// parseModesSection parses every [modes.<name>] table into dst.
func parseModesSection(raw map[string]any, dst map[string]domain.Mode) []string {
	var warnings []string
	for name, value := range raw {
		table, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid mode in [modes]: %s", name))
			continue
		}
		mode := domain.Mode{Name: name, Kind: domain.KindMinor, Toggle: true}
		valid := true
		for k, v := range table {
			switch k {
			case "kind":
				s, _ := v.(string)
				kind, err := domain.ParseModeKind(s)
				if err != nil {
					warnings = append(warnings, fmt.Sprintf("invalid kind in [modes.%s]: %v", name, v))
					valid = false
					continue
				}
				mode.Kind = kind
			case "description":
				if s, ok := v.(string); ok {
					mode.Description = s
				}
			case "lighter":
				if s, ok := v.(string); ok {
					mode.Lighter = s
				}
			case "toggle":
				if b, ok := v.(bool); ok {
					mode.Toggle = b
				}
			case "options":
				if opts, ok := v.(map[string]any); ok {
					mode.Options = opts
				}
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [modes.%s]: %s", name, k))
			}
		}
		if valid {
			dst[name] = mode
		}
	}
	return warnings
}

// tableIndex records the header lines of mode tables in a config file.
type tableIndex struct {
	modes   map[string]int // [modes.<name>]
	options map[string]int // [modes.<name>.options]
}

// indexTables scans data for [modes.<name>] and [modes.<name>.options]
// headers. Names may be bare or double-quoted keys.
func indexTables(data []byte) tableIndex {
	idx := tableIndex{modes: make(map[string]int), options: make(map[string]int)}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[modes.") || strings.HasPrefix(line, "[[") {
			continue
		}
		end := strings.LastIndex(line, "]")
		if end < 0 {
			continue
		}
		name, rest, ok := splitKey(strings.TrimSpace(line[len("[modes."):end]))
		if !ok {
			continue
		}
		var dst map[string]int
		switch strings.TrimSpace(rest) {
		case "":
			dst = idx.modes
		case ".options":
			dst = idx.options
		default:
			continue
		}
		if _, seen := dst[name]; !seen {
			dst[name] = n
		}
	}
	return idx
}

// splitKey splits the first segment off a dotted TOML key.
func splitKey(key string) (string, string, bool) {
	if strings.HasPrefix(key, `"`) {
		end := strings.Index(key[1:], `"`)
		if end < 0 {
			return "", "", false
		}
		name, err := strconv.Unquote(key[:end+2])
		if err != nil {
			return "", "", false
		}
		return name, key[end+2:], true
	}
	if dot := strings.Index(key, "."); dot >= 0 {
		return strings.TrimSpace(key[:dot]), key[dot:], true
	}
	return key, "", true
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Picker: domain.PickerConfig{
			Sources: base.Picker.Sources,
			Actions: make(map[string][]domain.ActionRef, len(base.Picker.Actions)),
		},
		Context:  base.Context,
		Log:      base.Log,
		State:    base.State,
		Modes:    make(map[string]domain.Mode, len(base.Modes)+len(override.Modes)),
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	for source, refs := range base.Picker.Actions {
		result.Picker.Actions[source] = refs
	}
	for name, mode := range base.Modes {
		result.Modes[name] = mode
	}

	if override.Picker.Sources != nil {
		result.Picker.Sources = override.Picker.Sources
	}
	for source, refs := range override.Picker.Actions {
		result.Picker.Actions[source] = refs
	}
	if override.Context.Major != "" {
		result.Context.Major = override.Context.Major
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.State.Store != "" {
		result.State.Store = override.State.Store
	}
	if override.State.Namespace != "" {
		result.State.Namespace = override.State.Namespace
	}

	// A mode declared again replaces the earlier declaration entirely,
	// so its definition location points at the overriding file.
	for name, mode := range override.Modes {
		result.Modes[name] = mode
	}

	return result
}
