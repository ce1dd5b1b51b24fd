// Package source contains the income source management use cases.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// GetSourceInput represents the input for retrieving an income source.
type GetSourceInput struct {
	ID uuid.UUID
}

// GetSourceOutput represents the output of retrieving an income source.
type GetSourceOutput struct {
	Source *entity.IncomeSource
}

// GetSourceUseCase retrieves a single income source by id.
type GetSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewGetSourceUseCase creates a new GetSourceUseCase instance.
func NewGetSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *GetSourceUseCase {
	return &GetSourceUseCase{sourceRepo: sourceRepo}
}

// Execute retrieves the income source.
func (uc *GetSourceUseCase) Execute(ctx context.Context, input GetSourceInput) (*GetSourceOutput, error) {
	source, err := uc.sourceRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return nil, domainerror.NewSourceError(
				domainerror.ErrCodeSourceNotFound,
				"income source not found",
				domainerror.ErrSourceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income source: %w", err)
	}
	return &GetSourceOutput{Source: source}, nil
}
