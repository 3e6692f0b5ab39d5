// Package adapter defines interfaces for external dependencies.
package adapter

import "context"

// BiometricService is the platform biometric collaborator. Authenticate
// blocks until the platform prompt resolves; the platform controls the
// prompt lifetime, so no timeout is imposed here beyond the context.
// Platform failures must be surfaced verbatim to the caller.
type BiometricService interface {
	Available() bool
	Authenticate(ctx context.Context) error
}
