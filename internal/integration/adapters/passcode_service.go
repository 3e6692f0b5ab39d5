// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 12

// passcodeService implements the adapter.PasscodeService interface.
type passcodeService struct{}

// NewPasscodeService creates a new passcode service instance.
func NewPasscodeService() adapter.PasscodeService {
	return &passcodeService{}
}

// HashPasscode hashes a plain text passcode using bcrypt.
func (s *passcodeService) HashPasscode(passcode string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPasscode compares a plain text passcode with a hashed passcode.
func (s *passcodeService) VerifyPasscode(hashedPasscode, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPasscode), []byte(candidate))
}
