// Package security implements the application lock gate and its
// configuration.
package security

import (
	"context"
	"fmt"
	"sync"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Gate is the stateful security gate. It holds the binary lock state,
// reacts to lifecycle transitions, and arbitrates unlock attempts. All
// state transitions happen under one mutex; when concurrent attempts race,
// the last write wins and an unlock arriving after the gate is already
// unlocked is a no-op.
type Gate struct {
	mu       sync.Mutex
	state    entity.LockState
	settings entity.LockSettings

	secretStore adapter.SecretStore
	passcodes   adapter.PasscodeService
	biometrics  adapter.BiometricService
	tokens      adapter.TokenService
}

// NewGate creates the gate in its initial state: locked if and only if app
// lock is enabled.
func NewGate(
	settings entity.LockSettings,
	secretStore adapter.SecretStore,
	passcodes adapter.PasscodeService,
	biometrics adapter.BiometricService,
	tokens adapter.TokenService,
) *Gate {
	state := entity.LockStateUnlocked
	if settings.Enabled {
		state = entity.LockStateLocked
	}

	return &Gate{
		state:       state,
		settings:    settings,
		secretStore: secretStore,
		passcodes:   passcodes,
		biometrics:  biometrics,
		tokens:      tokens,
	}
}

// Status returns the current lock state.
func (g *Gate) Status() entity.LockState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Settings returns the gate's current lock configuration.
func (g *Gate) Settings() entity.LockSettings {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.settings
}

// Require returns an error when the gate is locked. Data operations call
// this before touching records.
func (g *Gate) Require() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == entity.LockStateLocked {
		return domainerror.NewSecurityError(
			domainerror.ErrCodeAppLocked, "application is locked", false, domainerror.ErrAppLocked)
	}
	return nil
}

// HandleLifecycle applies a host lifecycle transition. Leaving the
// foreground (background or inactive) locks the gate when app lock is
// enabled; returning to the foreground never unlocks by itself.
func (g *Gate) HandleLifecycle(event entity.LifecycleEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch event {
	case entity.LifecycleBackground, entity.LifecycleInactive:
		if g.settings.Enabled {
			g.state = entity.LockStateLocked
		}
	case entity.LifecycleForeground:
		// Unlocking requires an explicit attempt.
	}
}

// ApplySettings replaces the lock configuration. Disabling app lock
// unlocks the gate immediately; enabling it does not lock until the next
// lifecycle transition out of the foreground.
func (g *Gate) ApplySettings(settings entity.LockSettings) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.settings = settings
	if !settings.Enabled {
		g.state = entity.LockStateUnlocked
	}
}

// SubmitPIN attempts a PIN unlock. It succeeds only when PIN unlock is
// enabled, a passcode has been set, and the candidate matches it exactly.
// On success a session token is issued. There is no attempt limit; a
// mismatch is always retryable.
func (g *Gate) SubmitPIN(ctx context.Context, pin string) (string, error) {
	g.mu.Lock()
	if g.state == entity.LockStateUnlocked {
		g.mu.Unlock()
		return "", nil
	}
	settings := g.settings
	g.mu.Unlock()

	if !settings.Enabled || !settings.UsePIN {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodePINUnlockDisabled, "pin unlock is not enabled", false, domainerror.ErrPINUnlockDisabled)
	}

	stored, err := g.secretStore.Load(ctx, adapter.PasscodeKey)
	if err != nil {
		return "", fmt.Errorf("failed to load passcode: %w", err)
	}
	if stored == "" {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodePasscodeNotSet, "no passcode has been set", false, domainerror.ErrPasscodeNotSet)
	}

	if err := g.passcodes.VerifyPasscode(stored, pin); err != nil {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodePINMismatch, "incorrect PIN", true, domainerror.ErrPINMismatch)
	}

	return g.unlock(ctx)
}

// SubmitBiometric attempts a biometric unlock. The platform outcome is
// authoritative; its failure is surfaced to the caller unchanged inside a
// retryable error. On success a session token is issued.
func (g *Gate) SubmitBiometric(ctx context.Context) (string, error) {
	g.mu.Lock()
	if g.state == entity.LockStateUnlocked {
		g.mu.Unlock()
		return "", nil
	}
	settings := g.settings
	g.mu.Unlock()

	if !settings.Enabled || !settings.UseBiometric {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeBiometricDisabled, "biometric unlock is not enabled", false, domainerror.ErrBiometricDisabled)
	}
	if !g.biometrics.Available() {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeBiometricDisabled, "biometric authentication is not available", false, domainerror.ErrBiometricUnavailable)
	}

	// The prompt blocks; the mutex is not held across it.
	if err := g.biometrics.Authenticate(ctx); err != nil {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeBiometricFailed, "biometric authentication failed", true, err)
	}

	return g.unlock(ctx)
}

// unlock flips the gate to unlocked and issues a session token. A late
// success on an already-unlocked gate changes nothing and issues no second
// token.
func (g *Gate) unlock(ctx context.Context) (string, error) {
	g.mu.Lock()
	if g.state == entity.LockStateUnlocked {
		g.mu.Unlock()
		return "", nil
	}
	g.state = entity.LockStateUnlocked
	g.mu.Unlock()

	token, err := g.tokens.GenerateSessionToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, nil
}
