package adapters

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// biometricService implements the adapter.BiometricService interface. The
// server has no biometric sensor of its own; availability is configured at
// startup and a real deployment wires a platform collaborator here.
type biometricService struct {
	available bool
}

// NewBiometricService creates a new biometric service instance.
func NewBiometricService(available bool) adapter.BiometricService {
	return &biometricService{
		available: available,
	}
}

// Available reports whether a biometric check can be performed.
func (s *biometricService) Available() bool {
	return s.available
}

// Authenticate performs the biometric check.
func (s *biometricService) Authenticate(ctx context.Context) error {
	if !s.available {
		return domainerror.ErrBiometricUnavailable
	}
	return nil
}
