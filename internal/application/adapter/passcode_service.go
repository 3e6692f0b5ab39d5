// Package adapter defines interfaces for external dependencies.
package adapter

// PasscodeService defines the interface for passcode hashing operations.
// The stored form is an opaque hash; Verify preserves exact-string-match
// unlock semantics while keeping the passcode protected at rest.
type PasscodeService interface {
	HashPasscode(passcode string) (string, error)
	// VerifyPasscode returns nil iff candidate matches the hashed passcode.
	VerifyPasscode(hashedPasscode, candidate string) error
}
