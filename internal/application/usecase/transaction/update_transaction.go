// Package transaction contains the transaction management use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents a partial update of a transaction. Nil
// fields keep their current value. ClearHours removes tracked hours and wins
// over Hours when both are set.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Type        *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Description *string
	IsRecurring *bool
	Hours       *decimal.Decimal
	ClearHours  bool
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute applies the provided fields to the transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Type != nil {
		transactionType, err := parseTransactionType(*input.Type)
		if err != nil {
			return nil, err
		}
		tx.Type = transactionType
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		tx.Amount = *input.Amount
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		tx.Description = *input.Description
	}
	if input.IsRecurring != nil {
		tx.IsRecurring = *input.IsRecurring
	}
	if input.ClearHours {
		tx.Hours = nil
	} else if input.Hours != nil {
		if err := validateHours(input.Hours); err != nil {
			return nil, err
		}
		tx.Hours = input.Hours
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
