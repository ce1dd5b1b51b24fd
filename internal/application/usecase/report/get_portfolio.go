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

// PortfolioItem is one source's share of total revenue.
type PortfolioItem struct {
	SourceID   uuid.UUID
	Name       string
	Revenue    decimal.Decimal
	Percentage decimal.Decimal // 0-100, one decimal place
}

// GetPortfolioInput represents the input for the portfolio distribution report.
type GetPortfolioInput struct {
	Year  *int
	Month *int
}

// GetPortfolioOutput represents the output of the portfolio distribution report.
type GetPortfolioOutput struct {
	Items []PortfolioItem
}

// GetPortfolioUseCase computes each active source's percentage of total
// revenue within the requested window. Percentages are rounded per source
// without renormalization, so the total may drift slightly from 100.
type GetPortfolioUseCase struct {
	reportRepo ReportRepository
	clock      Clock
}

// NewGetPortfolioUseCase creates a new GetPortfolioUseCase instance.
func NewGetPortfolioUseCase(reportRepo ReportRepository, clock Clock) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{
		reportRepo: reportRepo,
		clock:      clock,
	}
}

// Execute computes the revenue distribution, ordered by revenue descending.
func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{
		Year:  input.Year,
		Month: input.Month,
	}, 0)
	if err != nil {
		return nil, err
	}

	aggregates, err := uc.reportRepo.SumBySource(ctx, start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get source sums: %w", err)
	}

	totalRevenue := decimal.Zero
	for _, agg := range aggregates {
		totalRevenue = totalRevenue.Add(agg.TotalRevenue)
	}

	items := make([]PortfolioItem, 0, len(aggregates))
	for _, agg := range aggregates {
		items = append(items, PortfolioItem{
			SourceID:   agg.SourceID,
			Name:       agg.Name,
			Revenue:    agg.TotalRevenue,
			Percentage: valueobject.RatioPercent(agg.TotalRevenue, totalRevenue, 1),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue.GreaterThan(items[j].Revenue)
	})

	return &GetPortfolioOutput{Items: items}, nil
}
