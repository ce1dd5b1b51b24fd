// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amounts are decoded straight into decimals so values never pass through
// binary floats.
type CreateTransactionRequest struct {
	SourceID    string           `json:"source_id" binding:"required"`
	Type        string           `json:"type" binding:"required"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        string           `json:"date" binding:"required"`
	Description string           `json:"description" binding:"required"`
	IsRecurring bool             `json:"is_recurring,omitempty"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. Absent fields keep their current value; ClearHours
// removes tracked hours.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
	IsRecurring *bool            `json:"is_recurring,omitempty"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	ClearHours  bool             `json:"clear_hours,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts carry at most two decimal places, so the float conversion is exact.
type TransactionResponse struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"source_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	IsRecurring bool      `json:"is_recurring"`
	Hours       *float64  `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          tx.ID.String(),
		SourceID:    tx.SourceID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.InexactFloat64(),
		Date:        tx.Date.Format("2006-01-02"),
		Description: tx.Description,
		IsRecurring: tx.IsRecurring,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if tx.Hours != nil {
		hours := tx.Hours.InexactFloat64()
		response.Hours = &hours
	}

	return response
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = ToTransactionResponse(tx)
	}
	return TransactionListResponse{Transactions: responses}
}
