package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SessionTokenClaims represents the claims of an unlock session token.
type SessionTokenClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with HS256
// signed JWTs.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateSessionToken issues a token for a fresh unlock session.
func (s *tokenService) GenerateSessionToken(ctx context.Context) (string, error) {
	now := time.Now().UTC()
	sessionID := uuid.New().String()
	claims := SessionTokenClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "expense-tracker",
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken parses and validates a session token.
func (s *tokenService) ValidateSessionToken(ctx context.Context, tokenString string) (*adapter.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionTokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewSecurityError(
			domainerror.ErrCodeInvalidToken, "invalid or expired session token", false, err)
	}

	claims, ok := token.Claims.(*SessionTokenClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewSecurityError(
			domainerror.ErrCodeInvalidToken, "invalid session token claims", false, nil)
	}

	return &adapter.SessionClaims{
		SessionID: claims.SessionID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
