// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRepository defines the store adapter for grouped-sum queries over
// transactions. Implementations must return exact decimal sums; aggregate
// results never pass through binary floats.
type ReportRepository interface {
	// SumByMonth returns revenue/expense sums grouped by "YYYY-MM" month key
	// within [start, end]. Months without transactions are absent from the
	// result; callers zero-fill.
	SumByMonth(ctx context.Context, start, end time.Time, activeSourcesOnly bool) ([]MonthlyAggregate, error)

	// SumByMonthForSource returns the monthly revenue/expense sums of a
	// single source within [start, end].
	SumByMonthForSource(ctx context.Context, sourceID uuid.UUID, start, end time.Time) ([]MonthlyAggregate, error)

	// SumByPeriod returns the revenue/expense/hours totals for the filter.
	SumByPeriod(ctx context.Context, filter PeriodFilter) (*PeriodTotals, error)

	// SumBySource returns per-source aggregates within [start, end]. Sources
	// with no transactions in the window are omitted.
	SumBySource(ctx context.Context, start, end time.Time, activeSourcesOnly bool) ([]SourceAggregate, error)

	// TopRevenueSources returns the highest-revenue active sources within
	// [start, end], ordered by total revenue descending, at most limit rows.
	TopRevenueSources(ctx context.Context, start, end time.Time, limit int) ([]SourceRevenue, error)

	// MonthlyRevenueBySources returns revenue grouped by (source, month) for
	// the given sources within [start, end].
	MonthlyRevenueBySources(ctx context.Context, sourceIDs []uuid.UUID, start, end time.Time) ([]SourceMonthlyRevenue, error)
}

// PeriodFilter narrows a SumByPeriod query.
type PeriodFilter struct {
	SourceID          *uuid.UUID
	Start             *time.Time
	End               *time.Time
	ActiveSourcesOnly bool
}

// MonthlyAggregate is a raw per-month sum row.
type MonthlyAggregate struct {
	Month   string // "YYYY-MM"
	Revenue decimal.Decimal
	Expense decimal.Decimal
}

// PeriodTotals is a raw sum over one period.
type PeriodTotals struct {
	Revenue    decimal.Decimal
	Expense    decimal.Decimal
	TotalHours decimal.Decimal
}

// SourceAggregate is a raw per-source sum row.
type SourceAggregate struct {
	SourceID     uuid.UUID
	Name         string
	NetProfit    decimal.Decimal
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalHours   decimal.Decimal
}

// SourceRevenue is a raw revenue total for one source.
type SourceRevenue struct {
	SourceID uuid.UUID
	Name     string
	Total    decimal.Decimal
}

// SourceMonthlyRevenue is a raw revenue sum for one source in one month.
type SourceMonthlyRevenue struct {
	SourceID uuid.UUID
	Name     string
	Month    string // "YYYY-MM"
	Revenue  decimal.Decimal
}
