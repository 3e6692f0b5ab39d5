package security

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeSecretStore struct {
	values map[string]string
}

func newFakeSecretStore() *fakeSecretStore {
	return &fakeSecretStore{values: make(map[string]string)}
}

func (s *fakeSecretStore) Save(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *fakeSecretStore) Load(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *fakeSecretStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

// fakePasscodeService hashes with a visible prefix so tests can assert the
// stored form differs from the plaintext.
type fakePasscodeService struct{}

func (fakePasscodeService) HashPasscode(passcode string) (string, error) {
	return "hashed:" + passcode, nil
}

func (fakePasscodeService) VerifyPasscode(hashedPasscode, candidate string) error {
	if hashedPasscode != "hashed:"+candidate {
		return errors.New("mismatch")
	}
	return nil
}

type fakeBiometricService struct {
	available bool
	err       error
}

func (s *fakeBiometricService) Available() bool { return s.available }

func (s *fakeBiometricService) Authenticate(_ context.Context) error { return s.err }

type fakeTokenService struct {
	issued int
}

func (s *fakeTokenService) GenerateSessionToken(_ context.Context) (string, error) {
	s.issued++
	return fmt.Sprintf("token-%d", s.issued), nil
}

func (s *fakeTokenService) ValidateSessionToken(_ context.Context, token string) (*adapter.SessionClaims, error) {
	return &adapter.SessionClaims{SessionID: token}, nil
}

func newTestGate(t *testing.T, settings entity.LockSettings, passcode string) (*Gate, *fakeTokenService) {
	t.Helper()
	secrets := newFakeSecretStore()
	if passcode != "" {
		if err := secrets.Save(context.Background(), adapter.PasscodeKey, "hashed:"+passcode); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	tokens := &fakeTokenService{}
	gate := NewGate(settings, secrets, fakePasscodeService{}, &fakeBiometricService{available: true}, tokens)
	return gate, tokens
}

func TestGate_InitialState(t *testing.T) {
	enabled, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")
	if enabled.Status() != entity.LockStateLocked {
		t.Error("expected gate to start locked when app lock is enabled")
	}

	disabled, _ := newTestGate(t, entity.LockSettings{Enabled: false}, "")
	if disabled.Status() != entity.LockStateUnlocked {
		t.Error("expected gate to start unlocked when app lock is disabled")
	}
}

func TestGate_WrongThenCorrectPIN(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")

	_, err := gate.SubmitPIN(context.Background(), "9999")
	if !errors.Is(err, domainerror.ErrPINMismatch) {
		t.Fatalf("expected PIN mismatch, got %v", err)
	}
	var secErr *domainerror.SecurityError
	if !errors.As(err, &secErr) || !secErr.Retryable {
		t.Error("expected a retryable security error")
	}
	if gate.Status() != entity.LockStateLocked {
		t.Error("expected gate to stay locked after a failed attempt")
	}

	token, err := gate.SubmitPIN(context.Background(), "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Error("expected a session token on unlock")
	}
	if gate.Status() != entity.LockStateUnlocked {
		t.Error("expected gate to be unlocked")
	}
}

func TestGate_PINUnlockDisabled(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UseBiometric: true}, "1234")

	_, err := gate.SubmitPIN(context.Background(), "1234")
	if !errors.Is(err, domainerror.ErrPINUnlockDisabled) {
		t.Errorf("expected pin-unlock-disabled, got %v", err)
	}
	if gate.Status() != entity.LockStateLocked {
		t.Error("expected gate to stay locked")
	}
}

func TestGate_PasscodeNotSet(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "")

	_, err := gate.SubmitPIN(context.Background(), "1234")
	if !errors.Is(err, domainerror.ErrPasscodeNotSet) {
		t.Errorf("expected passcode-not-set, got %v", err)
	}
}

func TestGate_Lifecycle(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")
	if _, err := gate.SubmitPIN(context.Background(), "1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gate.HandleLifecycle(entity.LifecycleForeground)
	if gate.Status() != entity.LockStateUnlocked {
		t.Error("expected foreground transition to leave the gate unlocked")
	}

	gate.HandleLifecycle(entity.LifecycleBackground)
	if gate.Status() != entity.LockStateLocked {
		t.Error("expected background transition to lock the gate")
	}

	gate.HandleLifecycle(entity.LifecycleForeground)
	if gate.Status() != entity.LockStateLocked {
		t.Error("expected return to foreground to keep the gate locked")
	}
}

func TestGate_LifecycleNoopWhenDisabled(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: false}, "")

	gate.HandleLifecycle(entity.LifecycleBackground)
	if gate.Status() != entity.LockStateUnlocked {
		t.Error("expected gate to stay unlocked when app lock is disabled")
	}
}

func TestGate_UnlockIsIdempotent(t *testing.T) {
	gate, tokens := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")

	if _, err := gate.SubmitPIN(context.Background(), "1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A late attempt against an already-unlocked gate is a no-op.
	token, err := gate.SubmitPIN(context.Background(), "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Error("expected no new token for a no-op unlock")
	}
	if tokens.issued != 1 {
		t.Errorf("expected one issued token, got %d", tokens.issued)
	}
}

func TestGate_Biometric(t *testing.T) {
	t.Run("success unlocks", func(t *testing.T) {
		gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UseBiometric: true}, "")
		token, err := gate.SubmitBiometric(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" || gate.Status() != entity.LockStateUnlocked {
			t.Error("expected unlocked gate with a session token")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")
		_, err := gate.SubmitBiometric(context.Background())
		if !errors.Is(err, domainerror.ErrBiometricDisabled) {
			t.Errorf("expected biometric-disabled, got %v", err)
		}
	})

	t.Run("platform failure surfaces verbatim", func(t *testing.T) {
		platformErr := errors.New("sensor timeout")
		secrets := newFakeSecretStore()
		gate := NewGate(
			entity.LockSettings{Enabled: true, UseBiometric: true},
			secrets, fakePasscodeService{},
			&fakeBiometricService{available: true, err: platformErr},
			&fakeTokenService{},
		)

		_, err := gate.SubmitBiometric(context.Background())
		if !errors.Is(err, platformErr) {
			t.Errorf("expected platform error in the chain, got %v", err)
		}
		if gate.Status() != entity.LockStateLocked {
			t.Error("expected gate to stay locked")
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		secrets := newFakeSecretStore()
		gate := NewGate(
			entity.LockSettings{Enabled: true, UseBiometric: true},
			secrets, fakePasscodeService{},
			&fakeBiometricService{available: false},
			&fakeTokenService{},
		)

		_, err := gate.SubmitBiometric(context.Background())
		if !errors.Is(err, domainerror.ErrBiometricUnavailable) {
			t.Errorf("expected biometric-unavailable, got %v", err)
		}
	})
}

func TestGate_Require(t *testing.T) {
	gate, _ := newTestGate(t, entity.LockSettings{Enabled: true, UsePIN: true}, "1234")

	if err := gate.Require(); !errors.Is(err, domainerror.ErrAppLocked) {
		t.Errorf("expected app-locked error, got %v", err)
	}

	if _, err := gate.SubmitPIN(context.Background(), "1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := gate.Require(); err != nil {
		t.Errorf("expected nil after unlock, got %v", err)
	}
}
