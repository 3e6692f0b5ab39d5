package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := service.ValidateSessionToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.SessionID == "" {
		t.Error("expected a session id in the claims")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Errorf("expected a future expiry, got %s", claims.ExpiresAt)
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.ValidateSessionToken(context.Background(), token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("test-secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.GenerateSessionToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.ValidateSessionToken(context.Background(), token)
	if err == nil {
		t.Fatal("expected a foreign signature to be rejected")
	}

	var secErr *domainerror.SecurityError
	if !errors.As(err, &secErr) || secErr.Code != domainerror.ErrCodeInvalidToken {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeInvalidToken, err)
	}
}
