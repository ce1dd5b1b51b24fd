// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
	"github.com/sideincome-tracker/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the per-source summary report.
type GetSummaryInput struct {
	SourceID uuid.UUID
	Year     *int
	Month    *int
}

// GetSummaryOutput represents the computed summary metrics for one source.
type GetSummaryOutput struct {
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
	NetProfit  decimal.Decimal
	TotalHours decimal.Decimal
	HourlyRate decimal.Decimal
	ROI        decimal.Decimal
}

// GetSummaryUseCase computes revenue/expense/net-profit and the efficiency
// metrics (hourly rate, ROI) for a single income source, optionally narrowed
// to a month or year. It sums the source's raw transaction list directly.
type GetSummaryUseCase struct {
	sourceRepo      adapter.IncomeSourceRepository
	transactionRepo adapter.TransactionRepository
	clock           Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	sourceRepo adapter.IncomeSourceRepository,
	transactionRepo adapter.TransactionRepository,
	clock Clock,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		sourceRepo:      sourceRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute computes the summary metrics.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	// Surface a missing source as-is; the summary is scoped to one source.
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

	filter := adapter.TransactionFilter{SourceID: &input.SourceID}
	start, end, windowed, err := uc.resolveWindow(input)
	if err != nil {
		return nil, err
	}
	if windowed {
		filter.StartDate = &start
		filter.EndDate = &end
	}

	transactions, err := uc.transactionRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return Summarize(transactions), nil
}

// resolveWindow maps the optional year/month parameters to a time window.
// With no parameters the summary covers the source's full history.
func (uc *GetSummaryUseCase) resolveWindow(input GetSummaryInput) (time.Time, time.Time, bool, error) {
	if input.Month != nil {
		year, month, err := ResolveMonth(uc.clock.Now(), input.Year, input.Month)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		start, end := MonthBounds(year, month)
		return start, end, true, nil
	}
	if input.Year != nil {
		start, end, err := ResolveRange(uc.clock.Now(), RangeFilter{Year: input.Year}, 0)
		if err != nil {
			return time.Time{}, time.Time{}, false, err
		}
		return start, end, true, nil
	}
	return time.Time{}, time.Time{}, false, nil
}

// Summarize folds a raw transaction list into summary metrics. Every
// accumulation and ratio goes through exact decimal arithmetic; hours that
// were not tracked contribute zero.
func Summarize(transactions []*entity.Transaction) *GetSummaryOutput {
	revenue := decimal.Zero
	expense := decimal.Zero
	totalHours := decimal.Zero

	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeRevenue:
			revenue = revenue.Add(tx.Amount)
		case entity.TransactionTypeExpense:
			expense = expense.Add(tx.Amount)
		}
		if tx.Hours != nil {
			totalHours = totalHours.Add(*tx.Hours)
		}
	}

	netProfit := revenue.Sub(expense)

	return &GetSummaryOutput{
		Revenue:    revenue,
		Expense:    expense,
		NetProfit:  netProfit,
		TotalHours: totalHours,
		HourlyRate: valueobject.DivRound(netProfit, totalHours, 0),
		ROI:        valueobject.RatioPercent(netProfit, expense, 1),
	}
}
