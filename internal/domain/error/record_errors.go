// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record is not found in the store.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordKind is returned when the record kind is neither expense nor income.
	ErrInvalidRecordKind = errors.New("invalid record kind")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrEmptyCategoryName is returned when the category name is blank after trimming.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordKind   RecordErrorCode = "REC-010001"
	ErrCodeNonPositiveAmount   RecordErrorCode = "REC-010002"
	ErrCodeEmptyCategoryName   RecordErrorCode = "REC-010003"
	ErrCodeMissingRecordFields RecordErrorCode = "REC-010004"

	// Lookup errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
