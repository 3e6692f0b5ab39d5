package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpdateSettingsInput represents the input for updating display settings.
// Lock settings are configured through the security use cases, not here.
type UpdateSettingsInput struct {
	CurrencySymbol       string
	NotificationsEnabled bool
	DarkMode             bool
}

// UpdateSettingsOutput represents the output after updating settings.
type UpdateSettingsOutput struct {
	Settings entity.Settings
}

// UpdateSettingsUseCase handles settings updates.
type UpdateSettingsUseCase struct {
	settingsStore adapter.SettingsStore
	defaults      entity.Settings
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsStore adapter.SettingsStore, defaults entity.Settings) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsStore: settingsStore,
		defaults:      defaults,
	}
}

// Execute replaces the display settings, preserving the lock configuration.
// A blank currency symbol falls back to the default.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := uc.settingsStore.Load(ctx, uc.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	symbol := strings.TrimSpace(input.CurrencySymbol)
	if symbol == "" {
		symbol = uc.defaults.CurrencySymbol
	}

	settings.CurrencySymbol = symbol
	settings.NotificationsEnabled = input.NotificationsEnabled
	settings.DarkMode = input.DarkMode

	if err := uc.settingsStore.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}
