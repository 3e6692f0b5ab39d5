// Package adapter defines interfaces for external dependencies.
package adapter

import (
	"context"
	"time"
)

// SessionClaims holds the validated claims of an unlock session token.
type SessionClaims struct {
	SessionID string
	ExpiresAt time.Time
}

// TokenService defines the interface for unlock session token operations.
// A token is issued on successful unlock and handed to the client as proof
// of that unlock; ValidateSessionToken checks such a proof.
type TokenService interface {
	GenerateSessionToken(ctx context.Context) (string, error)
	ValidateSessionToken(ctx context.Context, token string) (*SessionClaims, error)
}
