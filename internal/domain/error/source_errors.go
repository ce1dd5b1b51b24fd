// Package error defines domain-specific errors for the Side Income Tracker application.
package error

import "errors"

// Income source domain errors.
var (
	// ErrSourceNotFound is returned when an income source is not found in the system.
	ErrSourceNotFound = errors.New("income source not found")

	// ErrSourceNameRequired is returned when the source name is empty.
	ErrSourceNameRequired = errors.New("source name is required")

	// ErrSourceNameTooLong is returned when the source name exceeds the maximum length.
	ErrSourceNameTooLong = errors.New("source name too long")

	// ErrInvalidSourceType is returned when the source type is not a known value.
	ErrInvalidSourceType = errors.New("invalid source type")
)

// SourceErrorCode defines error codes for income source errors.
// Format: SRC-XXYYYY where XX is category and YYYY is specific error.
type SourceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSourceNameRequired SourceErrorCode = "SRC-010001"
	ErrCodeSourceNameTooLong  SourceErrorCode = "SRC-010002"
	ErrCodeInvalidSourceType  SourceErrorCode = "SRC-010003"

	// Lookup errors (02XXXX)
	ErrCodeSourceNotFound SourceErrorCode = "SRC-020001"
)

// SourceError represents an income source error with code and message.
type SourceError struct {
	Code    SourceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError with the given code and message.
func NewSourceError(code SourceErrorCode, message string, err error) *SourceError {
	return &SourceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
