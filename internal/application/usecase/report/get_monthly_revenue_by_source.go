// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopSourceLimit is how many sources the revenue-by-source trend covers.
// Sources below the cut are omitted entirely, not folded into an "other" row.
const TopSourceLimit = 5

// SourceMonthRevenue is one (month, source) cell of the revenue trend.
type SourceMonthRevenue struct {
	Month      string // "YYYY-MM"
	SourceID   uuid.UUID
	SourceName string
	Revenue    decimal.Decimal
}

// GetMonthlyRevenueBySourceInput represents the input for the top-sources
// revenue trend. Precedence: StartDate+EndDate > Limit > recent 6 months.
type GetMonthlyRevenueBySourceInput struct {
	Limit     *int
	StartDate *string
	EndDate   *string
}

// GetMonthlyRevenueBySourceOutput represents the zero-filled trend rows.
type GetMonthlyRevenueBySourceOutput struct {
	Rows []SourceMonthRevenue
}

// GetMonthlyRevenueBySourceUseCase produces one row per month bucket for each
// of the top revenue-earning active sources in the window.
type GetMonthlyRevenueBySourceUseCase struct {
	reportRepo ReportRepository
	clock      Clock
}

// NewGetMonthlyRevenueBySourceUseCase creates a new GetMonthlyRevenueBySourceUseCase instance.
func NewGetMonthlyRevenueBySourceUseCase(reportRepo ReportRepository, clock Clock) *GetMonthlyRevenueBySourceUseCase {
	return &GetMonthlyRevenueBySourceUseCase{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Execute computes the zero-filled revenue trend for the top sources.
// Months run chronologically; within a month, sources keep their revenue
// ranking order.
func (uc *GetMonthlyRevenueBySourceUseCase) Execute(
	ctx context.Context,
	input GetMonthlyRevenueBySourceInput,
) (*GetMonthlyRevenueBySourceOutput, error) {
	start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{
		Limit:     input.Limit,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}, DefaultRecentMonths)
	if err != nil {
		return nil, err
	}

	topSources, err := uc.reportRepo.TopRevenueSources(ctx, start, end, TopSourceLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top revenue sources: %w", err)
	}
	if len(topSources) == 0 {
		return &GetMonthlyRevenueBySourceOutput{Rows: []SourceMonthRevenue{}}, nil
	}

	sourceIDs := make([]uuid.UUID, len(topSources))
	for i, src := range topSources {
		sourceIDs[i] = src.SourceID
	}

	monthly, err := uc.reportRepo.MonthlyRevenueBySources(ctx, sourceIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly revenue by source: %w", err)
	}

	type cellKey struct {
		sourceID uuid.UUID
		month    string
	}
	cells := make(map[cellKey]decimal.Decimal, len(monthly))
	for _, row := range monthly {
		cells[cellKey{sourceID: row.SourceID, month: row.Month}] = row.Revenue
	}

	keys := MonthKeys(start, end)
	rows := make([]SourceMonthRevenue, 0, len(keys)*len(topSources))
	for _, key := range keys {
		for _, src := range topSources {
			revenue, ok := cells[cellKey{sourceID: src.SourceID, month: key}]
			if !ok {
				revenue = decimal.Zero
			}
			rows = append(rows, SourceMonthRevenue{
				Month:      key,
				SourceID:   src.SourceID,
				SourceName: src.Name,
				Revenue:    revenue,
			})
		}
	}

	return &GetMonthlyRevenueBySourceOutput{Rows: rows}, nil
}
