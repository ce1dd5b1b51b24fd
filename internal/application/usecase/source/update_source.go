// Package source contains the income source management use cases.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// UpdateSourceInput represents a partial update of an income source. Nil
// fields keep their current value; IsActive false archives the source without
// touching its history.
type UpdateSourceInput struct {
	ID          uuid.UUID
	Name        *string
	Type        *string
	Description *string
	IsActive    *bool
}

// UpdateSourceOutput represents the output of updating an income source.
type UpdateSourceOutput struct {
	Source *entity.IncomeSource
}

// UpdateSourceUseCase handles partial income source updates.
type UpdateSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewUpdateSourceUseCase creates a new UpdateSourceUseCase instance.
func NewUpdateSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *UpdateSourceUseCase {
	return &UpdateSourceUseCase{sourceRepo: sourceRepo}
}

// Execute applies the provided fields to the income source.
func (uc *UpdateSourceUseCase) Execute(ctx context.Context, input UpdateSourceInput) (*UpdateSourceOutput, error) {
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

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		source.Name = *input.Name
	}
	if input.Type != nil {
		sourceType, err := parseSourceType(*input.Type)
		if err != nil {
			return nil, err
		}
		source.Type = sourceType
	}
	if input.Description != nil {
		source.Description = *input.Description
	}
	if input.IsActive != nil {
		source.IsActive = *input.IsActive
	}
	source.UpdatedAt = time.Now().UTC()

	if err := uc.sourceRepo.Update(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to update income source: %w", err)
	}

	return &UpdateSourceOutput{Source: source}, nil
}
