// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/domain/valueobject"
)

// MonthStats holds one month's totals for the dashboard comparison.
type MonthStats struct {
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
	NetProfit  decimal.Decimal
	TotalHours decimal.Decimal
}

// ChangeRates holds the per-metric month-over-month change percentages.
type ChangeRates struct {
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
	NetProfit  decimal.Decimal
	TotalHours decimal.Decimal
}

// GetDashboardSummaryInput represents the input for the dashboard summary.
// Without parameters the target is the month containing the current date.
type GetDashboardSummaryInput struct {
	Year  *int
	Month *int
}

// GetDashboardSummaryOutput represents the month-over-month comparison.
type GetDashboardSummaryOutput struct {
	CurrentMonth  MonthStats
	PreviousMonth MonthStats
	ChangeRate    ChangeRates
}

// GetDashboardSummaryUseCase compares the target month against the previous
// calendar month (wrapping the year at January) across active sources.
type GetDashboardSummaryUseCase struct {
	reportRepo ReportRepository
	clock      Clock
}

// NewGetDashboardSummaryUseCase creates a new GetDashboardSummaryUseCase instance.
func NewGetDashboardSummaryUseCase(reportRepo ReportRepository, clock Clock) *GetDashboardSummaryUseCase {
	return &GetDashboardSummaryUseCase{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

type monthTotalsResult struct {
	totals *PeriodTotals
	err    error
}

// Execute computes the dashboard summary. The two month aggregates are
// independent queries and run concurrently; results are combined only after
// both complete.
func (uc *GetDashboardSummaryUseCase) Execute(ctx context.Context, input GetDashboardSummaryInput) (*GetDashboardSummaryOutput, error) {
	year, month, err := ResolveMonth(uc.clock.Now(), input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	prevYear, prevMonth := PreviousMonth(year, month)

	currentCh := uc.queryMonth(ctx, year, month)
	previousCh := uc.queryMonth(ctx, prevYear, prevMonth)

	currentRes := <-currentCh
	previousRes := <-previousCh

	if currentRes.err != nil {
		return nil, fmt.Errorf("failed to get current month totals: %w", currentRes.err)
	}
	if previousRes.err != nil {
		return nil, fmt.Errorf("failed to get previous month totals: %w", previousRes.err)
	}

	current := toMonthStats(currentRes.totals)
	previous := toMonthStats(previousRes.totals)

	return &GetDashboardSummaryOutput{
		CurrentMonth:  current,
		PreviousMonth: previous,
		ChangeRate: ChangeRates{
			Revenue:    valueobject.ChangeRate(current.Revenue, previous.Revenue),
			Expense:    valueobject.ChangeRate(current.Expense, previous.Expense),
			NetProfit:  valueobject.ChangeRate(current.NetProfit, previous.NetProfit),
			TotalHours: valueobject.ChangeRate(current.TotalHours, previous.TotalHours),
		},
	}, nil
}

func (uc *GetDashboardSummaryUseCase) queryMonth(ctx context.Context, year int, month time.Month) <-chan monthTotalsResult {
	ch := make(chan monthTotalsResult, 1)
	go func() {
		start, end := MonthBounds(year, month)
		totals, err := uc.reportRepo.SumByPeriod(ctx, PeriodFilter{
			Start:             &start,
			End:               &end,
			ActiveSourcesOnly: true,
		})
		ch <- monthTotalsResult{totals: totals, err: err}
	}()
	return ch
}

func toMonthStats(totals *PeriodTotals) MonthStats {
	return MonthStats{
		Revenue:    totals.Revenue,
		Expense:    totals.Expense,
		NetProfit:  totals.Revenue.Sub(totals.Expense),
		TotalHours: totals.TotalHours,
	}
}
