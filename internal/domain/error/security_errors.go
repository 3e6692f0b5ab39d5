// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Security domain errors. All of these are recoverable: the user is prompted
// to retry, never locked out permanently.
var (
	// ErrPINMismatch is returned when the submitted PIN does not match the stored passcode.
	ErrPINMismatch = errors.New("incorrect PIN")

	// ErrPINUnlockDisabled is returned when PIN unlock is attempted but not enabled.
	ErrPINUnlockDisabled = errors.New("pin unlock is not enabled")

	// ErrPasscodeNotSet is returned when no passcode has been configured.
	ErrPasscodeNotSet = errors.New("no passcode has been set")

	// ErrBiometricDisabled is returned when biometric unlock is attempted but not enabled.
	ErrBiometricDisabled = errors.New("biometric unlock is not enabled")

	// ErrBiometricUnavailable is returned when the platform cannot perform a biometric check.
	ErrBiometricUnavailable = errors.New("biometric authentication is not available")

	// ErrNoUnlockMethod is returned when a configuration would leave no unlock method enabled.
	ErrNoUnlockMethod = errors.New("at least one unlock method must remain enabled")

	// ErrAppLocked is returned when a data operation is attempted while the gate is locked.
	ErrAppLocked = errors.New("application is locked")
)

// SecurityErrorCode defines error codes for security errors.
// Format: SEC-XXYYYY where XX is category and YYYY is specific error.
type SecurityErrorCode string

const (
	// Unlock errors (01XXXX)
	ErrCodePINMismatch       SecurityErrorCode = "SEC-010001"
	ErrCodePINUnlockDisabled SecurityErrorCode = "SEC-010002"
	ErrCodePasscodeNotSet    SecurityErrorCode = "SEC-010003"
	ErrCodeBiometricDisabled SecurityErrorCode = "SEC-010004"
	ErrCodeBiometricFailed   SecurityErrorCode = "SEC-010005"

	// Configuration errors (02XXXX)
	ErrCodeNoUnlockMethod  SecurityErrorCode = "SEC-020001"
	ErrCodeInvalidPasscode SecurityErrorCode = "SEC-020002"

	// Gate errors (03XXXX)
	ErrCodeAppLocked    SecurityErrorCode = "SEC-030001"
	ErrCodeInvalidToken SecurityErrorCode = "SEC-030002"
)

// SecurityError represents a security error with code and message.
// Retryable distinguishes "try again" failures (wrong PIN, biometric miss)
// from configuration problems.
type SecurityError struct {
	Code      SecurityErrorCode
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *SecurityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SecurityError) Unwrap() error {
	return e.Err
}

// NewSecurityError creates a new SecurityError with the given code and message.
func NewSecurityError(code SecurityErrorCode, message string, retryable bool, err error) *SecurityError {
	return &SecurityError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}
