// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (revenue or expense).
type TransactionType string

const (
	TransactionTypeRevenue TransactionType = "REVENUE"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction represents a single dated revenue or expense record tied to an
// income source. Amounts are always non-negative; the type carries the sign.
type Transaction struct {
	ID          uuid.UUID
	SourceID    uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time // date-only, no time-of-day semantics
	Description string
	IsRecurring bool
	Hours       *decimal.Decimal // nil means hours were not tracked
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	sourceID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	date time.Time,
	description string,
	isRecurring bool,
	hours *decimal.Decimal,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		SourceID:    sourceID,
		Type:        transactionType,
		Amount:      amount,
		Date:        date,
		Description: description,
		IsRecurring: isRecurring,
		Hours:       hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
