// Package adapter defines interfaces for external dependencies.
package adapter

import "context"

// SecretStore defines the interface for passcode persistence. Values are
// stored opaquely (the passcode service hashes before saving) and are kept
// separate from ordinary settings. Load returns ("", nil) when no secret
// has been saved.
type SecretStore interface {
	Save(ctx context.Context, key, value string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PasscodeKey is the secret store key under which the app passcode lives.
const PasscodeKey = "appPasscode"
