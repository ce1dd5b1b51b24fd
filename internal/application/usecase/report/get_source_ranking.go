// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/domain/valueobject"
)

// SourcePerformance is the per-source ranking entry.
type SourcePerformance struct {
	SourceID     uuid.UUID
	Name         string
	NetProfit    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalHours   decimal.Decimal
	ROI          decimal.Decimal
	HourlyRate   decimal.Decimal
}

// GetSourceRankingInput represents the input for the source performance ranking.
type GetSourceRankingInput struct {
	Year      *int
	Month     *int
	StartDate *string
	EndDate   *string
}

// GetSourceRankingOutput represents the output of the source performance ranking.
type GetSourceRankingOutput struct {
	Ranking []SourcePerformance
}

// GetSourceRankingUseCase ranks active sources by net profit and derives the
// efficiency metrics per source.
type GetSourceRankingUseCase struct {
	reportRepo ReportRepository
	clock      Clock
}

// NewGetSourceRankingUseCase creates a new GetSourceRankingUseCase instance.
func NewGetSourceRankingUseCase(reportRepo ReportRepository, clock Clock) *GetSourceRankingUseCase {
	return &GetSourceRankingUseCase{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Execute computes the ranking, sorted descending by net profit. Ties keep
// the store's row order.
func (uc *GetSourceRankingUseCase) Execute(ctx context.Context, input GetSourceRankingInput) (*GetSourceRankingOutput, error) {
	start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{
		Year:      input.Year,
		Month:     input.Month,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}, 0)
	if err != nil {
		return nil, err
	}

	aggregates, err := uc.reportRepo.SumBySource(ctx, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get source sums: %w", err)
	}

	ranking := make([]SourcePerformance, 0, len(aggregates))
	for _, agg := range aggregates {
		ranking = append(ranking, SourcePerformance{
			SourceID:     agg.SourceID,
			Name:         agg.Name,
			NetProfit:    agg.NetProfit,
			TotalRevenue: agg.TotalRevenue,
			TotalExpense: agg.TotalExpense,
			TotalHours:   agg.TotalHours,
			ROI:          valueobject.RatioPercent(agg.NetProfit, agg.TotalExpense, 1),
			HourlyRate:   valueobject.DivRound(agg.NetProfit, agg.TotalHours, 0),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].NetProfit.GreaterThan(ranking[j].NetProfit)
	})

	return &GetSourceRankingOutput{Ranking: ranking}, nil
}
