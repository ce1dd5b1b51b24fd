// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

// GetSourceMonthlyStatsInput represents the input for the per-source monthly
// trend. Without a limit the window is the recent 6 months including the
// current one.
type GetSourceMonthlyStatsInput struct {
	SourceID uuid.UUID
	Limit    *int
}

// GetSourceMonthlyStatsOutput represents the zero-filled per-source series.
type GetSourceMonthlyStatsOutput struct {
	Stats []MonthlyStat
}

// GetSourceMonthlyStatsUseCase produces the month-bucketed revenue/expense
// series for one source. The source is addressed by id, so the active-source
// filter does not apply; archived sources can still be inspected.
type GetSourceMonthlyStatsUseCase struct {
	sourceRepo adapter.IncomeSourceRepository
	reportRepo ReportRepository
	clock      Clock
}

// NewGetSourceMonthlyStatsUseCase creates a new GetSourceMonthlyStatsUseCase instance.
func NewGetSourceMonthlyStatsUseCase(
	sourceRepo adapter.IncomeSourceRepository,
	reportRepo ReportRepository,
	clock Clock,
) *GetSourceMonthlyStatsUseCase {
	return &GetSourceMonthlyStatsUseCase{
		sourceRepo: sourceRepo,
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Execute computes the zero-filled monthly series for one source.
func (uc *GetSourceMonthlyStatsUseCase) Execute(
	ctx context.Context,
	input GetSourceMonthlyStatsInput,
) (*GetSourceMonthlyStatsOutput, error) {
	if _, err := uc.sourceRepo.FindByID(ctx, input.SourceID); err != nil {
		if errors.Is(err, domainerror.ErrSourceNotFound) {
			return nil, domainerror.NewSourceError(
				domainerror.ErrCodeSourceNotFound,
				"income source not found",
				domainerror.ErrSourceNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find income source: %w", err)
	}

	start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{Limit: input.Limit}, DefaultRecentMonths)
	if err != nil {
		return nil, err
	}

	aggregates, err := uc.reportRepo.SumByMonthForSource(ctx, input.SourceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly sums for source: %w", err)
	}

	return &GetSourceMonthlyStatsOutput{
		Stats: ZeroFillMonths(start, end, aggregates),
	}, nil
}
