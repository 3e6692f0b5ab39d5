package security

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeSettingsStore struct {
	settings *entity.Settings
}

func (s *fakeSettingsStore) Load(_ context.Context, defaults entity.Settings) (entity.Settings, error) {
	if s.settings == nil {
		return defaults, nil
	}
	return *s.settings, nil
}

func (s *fakeSettingsStore) Save(_ context.Context, settings entity.Settings) error {
	s.settings = &settings
	return nil
}

func newConfigureFixture(t *testing.T, lock entity.LockSettings) (*ConfigureLockUseCase, *Gate, *fakeSecretStore, *fakeSettingsStore) {
	t.Helper()
	secrets := newFakeSecretStore()
	settings := &fakeSettingsStore{}
	gate := NewGate(lock, secrets, fakePasscodeService{}, &fakeBiometricService{available: true}, &fakeTokenService{})
	uc := NewConfigureLockUseCase(settings, secrets, fakePasscodeService{}, gate, entity.Settings{CurrencySymbol: "₹"})
	return uc, gate, secrets, settings
}

func TestConfigureLock_RejectsNoUnlockMethod(t *testing.T) {
	uc, _, _, _ := newConfigureFixture(t, entity.LockSettings{})

	_, err := uc.Execute(context.Background(), ConfigureLockInput{Enabled: true})
	if !errors.Is(err, domainerror.ErrNoUnlockMethod) {
		t.Errorf("expected no-unlock-method error, got %v", err)
	}
}

func TestConfigureLock_StoresHashedPasscode(t *testing.T) {
	uc, _, secrets, settings := newConfigureFixture(t, entity.LockSettings{})
	passcode := "1234"

	out, err := uc.Execute(context.Background(), ConfigureLockInput{
		Enabled:  true,
		UsePIN:   true,
		Passcode: &passcode,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Settings.UsePIN {
		t.Error("expected pin unlock to be enabled")
	}

	stored, err := secrets.Load(context.Background(), adapter.PasscodeKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == passcode {
		t.Error("expected the stored passcode to be hashed, not plaintext")
	}
	if stored != "hashed:"+passcode {
		t.Errorf("unexpected stored form %q", stored)
	}

	if settings.settings == nil || !settings.settings.Lock.Enabled {
		t.Error("expected lock settings to be persisted")
	}
}

func TestConfigureLock_RejectsBlankPasscode(t *testing.T) {
	uc, _, _, _ := newConfigureFixture(t, entity.LockSettings{})
	blank := "   "

	_, err := uc.Execute(context.Background(), ConfigureLockInput{
		Enabled:  true,
		UsePIN:   true,
		Passcode: &blank,
	})
	var secErr *domainerror.SecurityError
	if !errors.As(err, &secErr) || secErr.Code != domainerror.ErrCodeInvalidPasscode {
		t.Errorf("expected invalid-passcode error, got %v", err)
	}
}

func TestConfigureLock_DisablingUnlocksGate(t *testing.T) {
	uc, gate, _, _ := newConfigureFixture(t, entity.LockSettings{Enabled: true, UsePIN: true})
	if gate.Status() != entity.LockStateLocked {
		t.Fatal("expected gate to start locked")
	}

	if _, err := uc.Execute(context.Background(), ConfigureLockInput{Enabled: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gate.Status() != entity.LockStateUnlocked {
		t.Error("expected disabling app lock to unlock the gate")
	}
}

func TestConfigureLock_EnablingDoesNotLockImmediately(t *testing.T) {
	uc, gate, _, _ := newConfigureFixture(t, entity.LockSettings{})
	passcode := "1234"

	if _, err := uc.Execute(context.Background(), ConfigureLockInput{
		Enabled:  true,
		UsePIN:   true,
		Passcode: &passcode,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gate.Status() != entity.LockStateUnlocked {
		t.Error("expected gate to stay unlocked until the next lifecycle transition")
	}

	gate.HandleLifecycle(entity.LifecycleBackground)
	if gate.Status() != entity.LockStateLocked {
		t.Error("expected the next background transition to lock the gate")
	}
}
