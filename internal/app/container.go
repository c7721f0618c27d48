// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/config"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/git"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/gitstore"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/host"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/jsonstore"
	"github.com/xuchunyang/helm-describe-modes/internal/infra/logging"
	"github.com/xuchunyang/helm-describe-modes/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	RepoRoot string // Root directory of the git repository; empty outside one
	GitDir   string // Path to .git directory
	DataDir  string // Directory for the JSON state file and logs
}

// newConfig creates a Config from the git client, or from XDG_STATE_HOME
// when the working directory is not inside a repository.
func newConfig(gitClient *git.Client) Config {
	if gitClient == nil {
		return Config{DataDir: domain.GlobalDataDir(stateHome())}
	}
	repoRoot := gitClient.RepoRoot()
	return Config{
		RepoRoot: repoRoot,
		GitDir:   gitClient.GitDir(),
		DataDir:  domain.RepoDataDir(repoRoot),
	}
}

func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "state")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Host          domain.ModeHost
	StateStore    domain.StateStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig  *domain.Config // Merged configuration
	SlogLogger *slog.Logger   // Engine logger writing to the same file as Logger
	closer     func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given directory. Outside a git
// repository only the global configuration and a JSON state store are used.
func New(dir string) (*Container, error) {
	gitClient, err := git.NewClient(dir)
	if err != nil {
		if !errors.Is(err, domain.ErrNotGitRepository) {
			return nil, err
		}
		gitClient = nil
	}

	cfg := newConfig(gitClient)

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	// Default is "git" store; outside a repository only "json" is possible.
	var store domain.StateStore
	switch {
	case gitClient == nil || appConfig.State.Store == domain.StoreJSON:
		store = jsonstore.New(domain.StatePath(cfg.DataDir))
	default:
		if appConfig.State.Store != domain.StoreGit {
			appConfig.Warnings = append(appConfig.Warnings,
				fmt.Sprintf("unknown state store %q, using %q", appConfig.State.Store, domain.StoreGit))
		}
		store = gitstore.NewWithRepo(gitClient.Repository(), appConfig.State.Namespace)
	}

	fileLogger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Host:          host.New(appConfig, store, fileLogger),
		StateStore:    store,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		Logger:        fileLogger,
		AppConfig:     appConfig,
		SlogLogger:    fileLogger.Slog("picker"),
		closer:        fileLogger.Close,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, modeHost domain.ModeHost, loader domain.ConfigLoader, manager domain.ConfigManager, logger domain.Logger) *Container {
	return &Container{
		Host:          modeHost,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Logger:        logger,
		AppConfig:     appConfig,
		SlogLogger:    slog.New(slog.DiscardHandler),
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// OpenPickerUseCase returns a new OpenPicker use case whose actions report
// through presenter.
func (c *Container) OpenPickerUseCase(presenter domain.Presenter) *usecase.OpenPicker {
	sources := usecase.NewModeSources(c.Host, presenter, c.Logger)
	return usecase.NewOpenPicker(c.AppConfig, sources, c.SlogLogger)
}

// ListModesUseCase returns a new ListModes use case.
func (c *Container) ListModesUseCase() *usecase.ListModes {
	return usecase.NewListModes(c.Host)
}

// DescribeModeUseCase returns a new DescribeMode use case.
func (c *Container) DescribeModeUseCase() *usecase.DescribeMode {
	return usecase.NewDescribeMode(c.Host)
}

// ToggleModeUseCase returns a new ToggleMode use case.
func (c *Container) ToggleModeUseCase() *usecase.ToggleMode {
	return usecase.NewToggleMode(c.Host, c.Logger)
}

// SetMajorModeUseCase returns a new SetMajorMode use case.
func (c *Container) SetMajorModeUseCase() *usecase.SetMajorMode {
	return usecase.NewSetMajorMode(c.Host)
}

// SetDefaultMajorModeUseCase returns a new SetDefaultMajorMode use case.
func (c *Container) SetDefaultMajorModeUseCase() *usecase.SetDefaultMajorMode {
	return usecase.NewSetDefaultMajorMode(c.Host)
}

// LocateModeUseCase returns a new LocateMode use case.
func (c *Container) LocateModeUseCase() *usecase.LocateMode {
	return usecase.NewLocateMode(c.Host)
}

// CustomizeModeUseCase returns a new CustomizeMode use case.
func (c *Container) CustomizeModeUseCase() *usecase.CustomizeMode {
	return usecase.NewCustomizeMode(c.Host)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.StateStore)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
