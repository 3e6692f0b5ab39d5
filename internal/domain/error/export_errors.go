// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Export domain errors. Export is a pure transformation; these only cover
// I/O failures at the boundary, reported and never retried.
var (
	// ErrExportWriteFailed is returned when the rendered output cannot be written.
	ErrExportWriteFailed = errors.New("failed to write export output")
)

// ExportErrorCode defines error codes for export errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExportErrorCode string

const (
	// I/O errors (01XXXX)
	ErrCodeExportWriteFailed ExportErrorCode = "EXP-010001"
)

// ExportError represents an export error with code and message.
type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError with the given code and message.
func NewExportError(code ExportErrorCode, message string, err error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
