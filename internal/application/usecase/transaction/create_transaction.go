// Package transaction contains the transaction management use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// maxAmount is the largest storable amount; the amount column is decimal(12,2).
var maxAmount = decimal.New(1, 10)

// CreateTransactionInput represents the input for recording a transaction.
type CreateTransactionInput struct {
	SourceID    uuid.UUID
	Type        string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	IsRecurring bool
	Hours       *decimal.Decimal
}

// CreateTransactionOutput represents the output of recording a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation. The referenced
// income source must exist; archived sources still accept transactions.
type CreateTransactionUseCase struct {
	sourceRepo      adapter.IncomeSourceRepository
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	sourceRepo adapter.IncomeSourceRepository,
	transactionRepo adapter.TransactionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		sourceRepo:      sourceRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute validates the input and records the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transactionType, err := parseTransactionType(input.Type)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := validateHours(input.Hours); err != nil {
		return nil, err
	}

	if _, err := uc.sourceRepo.FindByID(ctx, input.SourceID); err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnSourceNotFound,
				"income source not found",
				domainerror.ErrSourceNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find income source: %w", err)
	}

	tx := entity.NewTransaction(
		input.SourceID,
		transactionType,
		input.Amount,
		input.Date,
		input.Description,
		input.IsRecurring,
		input.Hours,
	)
	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}

func parseTransactionType(raw string) (entity.TransactionType, error) {
	switch entity.TransactionType(raw) {
	case entity.TransactionTypeRevenue, entity.TransactionTypeExpense:
		return entity.TransactionType(raw), nil
	default:
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type %q", raw),
			domainerror.ErrInvalidTransactionType,
		)
	}
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeAmountTooLarge,
			"amount exceeds maximum supported value",
			domainerror.ErrAmountTooLarge,
		)
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}
	return nil
}

func validateHours(hours *decimal.Decimal) error {
	if hours != nil && hours.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeHours,
			"hours must not be negative",
			domainerror.ErrNegativeHours,
		)
	}
	return nil
}
