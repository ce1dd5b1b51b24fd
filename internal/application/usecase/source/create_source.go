// Package source contains the income source management use cases.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// MaxNameLength is the upper bound on income source names.
const MaxNameLength = 100

// CreateSourceInput represents the input for creating an income source.
type CreateSourceInput struct {
	Name        string
	Type        string
	Description string
}

// CreateSourceOutput represents the output of creating an income source.
type CreateSourceOutput struct {
	Source *entity.IncomeSource
}

// CreateSourceUseCase handles income source creation. New sources start active.
type CreateSourceUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
}

// NewCreateSourceUseCase creates a new CreateSourceUseCase instance.
func NewCreateSourceUseCase(sourceRepo adapter.IncomeSourceRepository) *CreateSourceUseCase {
	return &CreateSourceUseCase{sourceRepo: sourceRepo}
}

// Execute validates the input and creates the income source.
func (uc *CreateSourceUseCase) Execute(ctx context.Context, input CreateSourceInput) (*CreateSourceOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	sourceType, err := parseSourceType(input.Type)
	if err != nil {
		return nil, err
	}

	source := entity.NewIncomeSource(input.Name, sourceType, input.Description)
	if err := uc.sourceRepo.Create(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to create income source: %w", err)
	}

	return &CreateSourceOutput{Source: source}, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameRequired,
			"source name is required",
			domainerror.ErrSourceNameRequired,
		)
	}
	if len(name) > MaxNameLength {
		return domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameTooLong,
			fmt.Sprintf("source name must be at most %d characters", MaxNameLength),
			domainerror.ErrSourceNameTooLong,
		)
	}
	return nil
}

func parseSourceType(raw string) (entity.IncomeSourceType, error) {
	switch entity.IncomeSourceType(raw) {
	case entity.IncomeSourceTypeFreelance,
		entity.IncomeSourceTypeProject,
		entity.IncomeSourceTypePassive,
		entity.IncomeSourceTypeEtc:
		return entity.IncomeSourceType(raw), nil
	default:
		return "", domainerror.NewSourceError(
			domainerror.ErrCodeInvalidSourceType,
			fmt.Sprintf("invalid source type %q", raw),
			domainerror.ErrInvalidSourceType,
		)
	}
}
