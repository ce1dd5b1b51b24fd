// Package source contains the income source management use cases.
package source

import (
	"context"
	"fmt"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
)

// ListSourcesOutput represents the output of listing income sources.
type ListSourcesOutput struct {
	Sources []*entity.IncomeSource
}

// ListSourcesUseCase lists every income source, active and archived, ordered
// by creation date descending.
type ListSourcesUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewListSourcesUseCase creates a new ListSourcesUseCase instance.
func NewListSourcesUseCase(sourceRepo adapter.IncomeSourceRepository) *ListSourcesUseCase {
	return &ListSourcesUseCase{sourceRepo: sourceRepo}
}

// Execute retrieves all income sources.
func (uc *ListSourcesUseCase) Execute(ctx context.Context) (*ListSourcesOutput, error) {
	sources, err := uc.sourceRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	return &ListSourcesOutput{Sources: sources}, nil
}
