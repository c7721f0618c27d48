package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuchunyang/helm-describe-modes/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise repository config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
// Repository initialization also prepares the mode state store.
type InitConfig struct {
	configManager domain.ConfigManager
	stateStore    domain.StateStore
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager, stateStore domain.StateStore) *InitConfig {
	return &InitConfig{
		configManager: configManager,
		stateStore:    stateStore,
	}
}

// Execute creates a configuration file with default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var err error
	var path string

	if in.Global {
		path = uc.configManager.GetGlobalConfigInfo().Path
		err = uc.configManager.InitGlobalConfig()
	} else {
		path = uc.configManager.GetRepoConfigInfo().Path
		err = uc.configManager.InitRepoConfig()
	}

	if errors.Is(err, domain.ErrConfigExists) && path != "" {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	if err != nil {
		return nil, err
	}

	if !in.Global && uc.stateStore != nil {
		if err := uc.stateStore.Initialize(); err != nil {
			return nil, fmt.Errorf("initialize state store: %w", err)
		}
	}

	return &InitConfigOutput{Path: path}, nil
}
