package security

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ConfigureLockInput represents the input for reconfiguring app lock.
// Passcode is optional: nil leaves the stored passcode untouched.
type ConfigureLockInput struct {
	Enabled      bool
	UseBiometric bool
	UsePIN       bool
	Passcode     *string
}

// ConfigureLockOutput represents the output after reconfiguring app lock.
type ConfigureLockOutput struct {
	Settings entity.LockSettings
}

// ConfigureLockUseCase persists the lock configuration and applies it to
// the running gate.
type ConfigureLockUseCase struct {
	settingsStore adapter.SettingsStore
	secretStore   adapter.SecretStore
	passcodes     adapter.PasscodeService
	gate          *Gate
	defaults      entity.Settings
}

// NewConfigureLockUseCase creates a new ConfigureLockUseCase instance.
func NewConfigureLockUseCase(
	settingsStore adapter.SettingsStore,
	secretStore adapter.SecretStore,
	passcodes adapter.PasscodeService,
	gate *Gate,
	defaults entity.Settings,
) *ConfigureLockUseCase {
	return &ConfigureLockUseCase{
		settingsStore: settingsStore,
		secretStore:   secretStore,
		passcodes:     passcodes,
		gate:          gate,
		defaults:      defaults,
	}
}

// Execute validates and stores the new lock configuration. Enabling app
// lock with every unlock method switched off would make the gate
// permanently impassable, so that combination is rejected.
func (uc *ConfigureLockUseCase) Execute(ctx context.Context, input ConfigureLockInput) (*ConfigureLockOutput, error) {
	if input.Enabled && !input.UseBiometric && !input.UsePIN {
		return nil, domainerror.NewSecurityError(
			domainerror.ErrCodeNoUnlockMethod, "at least one unlock method must remain enabled", false, domainerror.ErrNoUnlockMethod)
	}

	if input.Passcode != nil {
		passcode := strings.TrimSpace(*input.Passcode)
		if passcode == "" {
			return nil, domainerror.NewSecurityError(
				domainerror.ErrCodeInvalidPasscode, "passcode cannot be empty", false, nil)
		}
		hashed, err := uc.passcodes.HashPasscode(passcode)
		if err != nil {
			return nil, fmt.Errorf("failed to hash passcode: %w", err)
		}
		if err := uc.secretStore.Save(ctx, adapter.PasscodeKey, hashed); err != nil {
			return nil, fmt.Errorf("failed to store passcode: %w", err)
		}
	}

	lock := entity.LockSettings{
		Enabled:      input.Enabled,
		UseBiometric: input.UseBiometric,
		UsePIN:       input.UsePIN,
	}

	settings, err := uc.settingsStore.Load(ctx, uc.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Lock = lock
	if err := uc.settingsStore.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	uc.gate.ApplySettings(lock)

	return &ConfigureLockOutput{Settings: lock}, nil
}
