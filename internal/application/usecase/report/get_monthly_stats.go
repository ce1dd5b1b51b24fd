// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStat is one zero-filled month bucket of the trend series.
type MonthlyStat struct {
	Month     string // "YYYY-MM"
	Revenue   decimal.Decimal
	Expense   decimal.Decimal
	NetProfit decimal.Decimal
}

// GetMonthlyStatsInput represents the input for the monthly trend report.
// Precedence: StartDate+EndDate > Limit > Year > current year.
type GetMonthlyStatsInput struct {
	Year      *int
	Limit     *int
	StartDate *string
	EndDate   *string
}

// GetMonthlyStatsOutput represents the output of the monthly trend report.
type GetMonthlyStatsOutput struct {
	Stats []MonthlyStat
}

// GetMonthlyStatsUseCase produces the month-bucketed revenue/expense trend
// across all active sources, with every month of the window present even
// when it holds no transactions.
type GetMonthlyStatsUseCase struct {
	reportRepo ReportRepository
	clock      Clock
}

// NewGetMonthlyStatsUseCase creates a new GetMonthlyStatsUseCase instance.
func NewGetMonthlyStatsUseCase(reportRepo ReportRepository, clock Clock) *GetMonthlyStatsUseCase {
	return &GetMonthlyStatsUseCase{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Execute computes the zero-filled monthly series.
func (uc *GetMonthlyStatsUseCase) Execute(ctx context.Context, input GetMonthlyStatsInput) (*GetMonthlyStatsOutput, error) {
	start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{
		Year:      input.Year,
		Limit:     input.Limit,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}, 0)
	if err != nil {
		return nil, err
	}

	aggregates, err := uc.reportRepo.SumByMonth(ctx, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly sums: %w", err)
	}

	return &GetMonthlyStatsOutput{
		Stats: ZeroFillMonths(start, end, aggregates),
	}, nil
}

// ZeroFillMonths expands sparse per-month aggregates into a contiguous,
// chronological series covering every month of [start, end].
func ZeroFillMonths(start, end time.Time, aggregates []MonthlyAggregate) []MonthlyStat {
	byMonth := make(map[string]MonthlyAggregate, len(aggregates))
	for _, agg := range aggregates {
		byMonth[agg.Month] = agg
	}

	keys := MonthKeys(start, end)
	stats := make([]MonthlyStat, 0, len(keys))
	for _, key := range keys {
		agg, ok := byMonth[key]
		if !ok {
			stats = append(stats, MonthlyStat{
				Month:     key,
				Revenue:   decimal.Zero,
				Expense:   decimal.Zero,
				NetProfit: decimal.Zero,
			})
			continue
		}
		stats = append(stats, MonthlyStat{
			Month:     key,
			Revenue:   agg.Revenue,
			Expense:   agg.Expense,
			NetProfit: agg.Revenue.Sub(agg.Expense),
		})
	}
	return stats
}
