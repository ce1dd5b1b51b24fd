// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sideincome-tracker/backend/internal/application/usecase/report"
)

// monthKeyExpr extracts the "YYYY-MM" bucket from the date column. It relies
// on the ISO text rendering of dates, which holds on both postgres and sqlite.
const monthKeyExpr = "SUBSTR(CAST(t.date AS VARCHAR), 1, 7)"

// reportRepository implements the report.ReportRepository interface with
// grouped-sum queries. Sums are scanned straight into decimals so aggregate
// results never pass through binary floats.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

type monthlySumRow struct {
	Month   string          `gorm:"column:month"`
	Revenue decimal.Decimal `gorm:"column:revenue"`
	Expense decimal.Decimal `gorm:"column:expense"`
}

// SumByMonth returns revenue/expense sums grouped by month key within
// [start, end]. Months without transactions are absent from the result.
func (r *reportRepository) SumByMonth(ctx context.Context, start, end time.Time, activeSourcesOnly bool) ([]report.MonthlyAggregate, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select(monthKeyExpr + ` AS month,
			COALESCE(SUM(CASE WHEN t.type = 'REVENUE' THEN t.amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0) AS expense`).
		Where("t.date >= ? AND t.date <= ?", start, end)

	if activeSourcesOnly {
		query = query.
			Joins("JOIN income_sources s ON s.id = t.source_id").
			Where("s.is_active = ?", true)
	}

	var rows []monthlySumRow
	if err := query.
		Group(monthKeyExpr).
		Order("month").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return toMonthlyAggregates(rows), nil
}

// SumByMonthForSource returns the monthly revenue/expense sums of a single
// source within [start, end].
func (r *reportRepository) SumByMonthForSource(ctx context.Context, sourceID uuid.UUID, start, end time.Time) ([]report.MonthlyAggregate, error) {
	var rows []monthlySumRow
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(monthKeyExpr + ` AS month,
			COALESCE(SUM(CASE WHEN t.type = 'REVENUE' THEN t.amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0) AS expense`).
		Where("t.source_id = ?", sourceID).
		Where("t.date >= ? AND t.date <= ?", start, end).
		Group(monthKeyExpr).
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toMonthlyAggregates(rows), nil
}

// SumByPeriod returns the revenue/expense/hours totals for the filter.
func (r *reportRepository) SumByPeriod(ctx context.Context, filter report.PeriodFilter) (*report.PeriodTotals, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`COALESCE(SUM(CASE WHEN t.type = 'REVENUE' THEN t.amount ELSE 0 END), 0) AS revenue,
			COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0) AS expense,
			COALESCE(SUM(t.hours), 0) AS total_hours`)

	if filter.SourceID != nil {
		query = query.Where("t.source_id = ?", *filter.SourceID)
	}
	if filter.Start != nil {
		query = query.Where("t.date >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("t.date <= ?", *filter.End)
	}
	if filter.ActiveSourcesOnly {
		query = query.
			Joins("JOIN income_sources s ON s.id = t.source_id").
			Where("s.is_active = ?", true)
	}

	var row struct {
		Revenue    decimal.Decimal `gorm:"column:revenue"`
		Expense    decimal.Decimal `gorm:"column:expense"`
		TotalHours decimal.Decimal `gorm:"column:total_hours"`
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, err
	}

	return &report.PeriodTotals{
		Revenue:    row.Revenue,
		Expense:    row.Expense,
		TotalHours: row.TotalHours,
	}, nil
}

// SumBySource returns per-source aggregates within [start, end]. Sources with
// no transactions in the window are omitted.
func (r *reportRepository) SumBySource(ctx context.Context, start, end time.Time, activeSourcesOnly bool) ([]report.SourceAggregate, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Select(`s.id AS source_id,
			s.name AS name,
			COALESCE(SUM(CASE WHEN t.type = 'REVENUE' THEN t.amount ELSE 0 END), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN t.type = 'EXPENSE' THEN t.amount ELSE 0 END), 0) AS total_expense,
			COALESCE(SUM(t.hours), 0) AS total_hours`).
		Joins("JOIN income_sources s ON s.id = t.source_id").
		Where("t.date >= ? AND t.date <= ?", start, end)

	if activeSourcesOnly {
		query = query.Where("s.is_active = ?", true)
	}

	var rows []struct {
		SourceID     uuid.UUID       `gorm:"column:source_id"`
		Name         string          `gorm:"column:name"`
		TotalRevenue decimal.Decimal `gorm:"column:total_revenue"`
		TotalExpense decimal.Decimal `gorm:"column:total_expense"`
		TotalHours   decimal.Decimal `gorm:"column:total_hours"`
	}
	if err := query.
		Group("s.id, s.name").
		Order("s.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	aggregates := make([]report.SourceAggregate, len(rows))
	for i, row := range rows {
		aggregates[i] = report.SourceAggregate{
			SourceID:     row.SourceID,
			Name:         row.Name,
			NetProfit:    row.TotalRevenue.Sub(row.TotalExpense),
			TotalRevenue: row.TotalRevenue,
			TotalExpense: row.TotalExpense,
			TotalHours:   row.TotalHours,
		}
	}
	return aggregates, nil
}

// TopRevenueSources returns the highest-revenue active sources within
// [start, end], ordered by total revenue descending.
func (r *reportRepository) TopRevenueSources(ctx context.Context, start, end time.Time, limit int) ([]report.SourceRevenue, error) {
	var rows []struct {
		SourceID uuid.UUID       `gorm:"column:source_id"`
		Name     string          `gorm:"column:name"`
		Total    decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("s.id AS source_id, s.name AS name, COALESCE(SUM(t.amount), 0) AS total").
		Joins("JOIN income_sources s ON s.id = t.source_id").
		Where("s.is_active = ?", true).
		Where("t.type = ?", "REVENUE").
		Where("t.date >= ? AND t.date <= ?", start, end).
		Group("s.id, s.name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	sources := make([]report.SourceRevenue, len(rows))
	for i, row := range rows {
		sources[i] = report.SourceRevenue{
			SourceID: row.SourceID,
			Name:     row.Name,
			Total:    row.Total,
		}
	}
	return sources, nil
}

// MonthlyRevenueBySources returns revenue grouped by (source, month) for the
// given sources within [start, end].
func (r *reportRepository) MonthlyRevenueBySources(ctx context.Context, sourceIDs []uuid.UUID, start, end time.Time) ([]report.SourceMonthlyRevenue, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}

	var rows []struct {
		SourceID uuid.UUID       `gorm:"column:source_id"`
		Name     string          `gorm:"column:name"`
		Month    string          `gorm:"column:month"`
		Revenue  decimal.Decimal `gorm:"column:revenue"`
	}
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("s.id AS source_id, s.name AS name, "+monthKeyExpr+" AS month, COALESCE(SUM(t.amount), 0) AS revenue").
		Joins("JOIN income_sources s ON s.id = t.source_id").
		Where("t.source_id IN ?", sourceIDs).
		Where("t.type = ?", "REVENUE").
		Where("t.date >= ? AND t.date <= ?", start, end).
		Group("s.id, s.name, " + monthKeyExpr).
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	revenues := make([]report.SourceMonthlyRevenue, len(rows))
	for i, row := range rows {
		revenues[i] = report.SourceMonthlyRevenue{
			SourceID: row.SourceID,
			Name:     row.Name,
			Month:    row.Month,
			Revenue:  row.Revenue,
		}
	}
	return revenues, nil
}

func toMonthlyAggregates(rows []monthlySumRow) []report.MonthlyAggregate {
	aggregates := make([]report.MonthlyAggregate, len(rows))
	for i, row := range rows {
		aggregates[i] = report.MonthlyAggregate{
			Month:   row.Month,
			Revenue: row.Revenue,
			Expense: row.Expense,
		}
	}
	return aggregates
}
