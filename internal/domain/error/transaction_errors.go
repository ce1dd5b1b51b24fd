// Package error defines domain-specific errors for the Side Income Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not REVENUE or EXPENSE.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when the transaction amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrAmountTooLarge is returned when the transaction amount exceeds the supported bound.
	ErrAmountTooLarge = errors.New("amount exceeds maximum supported value")

	// ErrDescriptionRequired is returned when the transaction description is empty.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrNegativeHours is returned when tracked hours are negative.
	ErrNegativeHours = errors.New("hours must not be negative")

	// ErrSourceNotFoundForTransaction is returned when the referenced income source does not exist.
	ErrSourceNotFoundForTransaction = errors.New("income source not found for transaction")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010002"
	ErrCodeAmountTooLarge         TransactionErrorCode = "TXN-010003"
	ErrCodeDescriptionRequired    TransactionErrorCode = "TXN-010004"
	ErrCodeNegativeHours          TransactionErrorCode = "TXN-010005"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnSourceNotFound   TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
