// Package error defines domain-specific errors for the Side Income Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateFormat is returned when a date string cannot be parsed as YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidDateRange is returned when the start date is after the end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrInvalidMonth is returned when the month parameter is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidLimit is returned when the month limit is not a positive number.
	ErrInvalidLimit = errors.New("limit must be a positive number")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Filter validation errors (01XXXX)
	ErrCodeInvalidDateFormat ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDateRange  ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonth      ReportErrorCode = "RPT-010003"
	ErrCodeInvalidLimit      ReportErrorCode = "RPT-010004"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
