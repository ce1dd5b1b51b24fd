// Package source contains the income source management use cases.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// DeleteSourceInput represents the input for deleting an income source.
type DeleteSourceInput struct {
	ID uuid.UUID
}

// DeleteSourceUseCase removes an income source. The store cascades the delete
// to the source's transactions.
type DeleteSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewDeleteSourceUseCase creates a new DeleteSourceUseCase instance.
func NewDeleteSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *DeleteSourceUseCase {
	return &DeleteSourceUseCase{sourceRepo: sourceRepo}
}

// Execute deletes the income source and, through the cascading foreign key,
// all of its transactions.
func (uc *DeleteSourceUseCase) Execute(ctx context.Context, input DeleteSourceInput) error {
	if _, err := uc.sourceRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return domainerror.NewSourceError(
				domainerror.ErrCodeSourceNotFound,
				"income source not found",
				domainerror.ErrSourceNotFound,
			)
		}
		return fmt.Errorf("failed to find income source: %w", err)
	}

	if err := uc.sourceRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete income source: %w", err)
	}
	return nil
}
