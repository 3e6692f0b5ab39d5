// Package settings contains the user settings use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of a settings read.
type GetSettingsOutput struct {
	Settings entity.Settings
}

// GetSettingsUseCase handles reading the settings context.
type GetSettingsUseCase struct {
	settingsStore adapter.SettingsStore
	defaults      entity.Settings
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsStore adapter.SettingsStore, defaults entity.Settings) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsStore: settingsStore,
		defaults:      defaults,
	}
}

// Execute loads the settings, filling unset keys with the defaults.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := uc.settingsStore.Load(ctx, uc.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &GetSettingsOutput{Settings: settings}, nil
}
