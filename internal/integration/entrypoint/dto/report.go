// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/sideincome-tracker/backend/internal/application/usecase/report"
)

// SummaryResponse represents the per-source summary metrics. Metric values
// are rounded before they reach the DTO, so the float conversion is exact.
type SummaryResponse struct {
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	NetProfit  float64 `json:"net_profit"`
	TotalHours float64 `json:"total_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	ROI        float64 `json:"roi"`
}

// MonthlyStatResponse represents one month bucket of a trend series.
type MonthlyStatResponse struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	Expense   float64 `json:"expense"`
	NetProfit float64 `json:"net_profit"`
}

// MonthlyStatsResponse represents a zero-filled monthly trend.
type MonthlyStatsResponse struct {
	Stats []MonthlyStatResponse `json:"stats"`
}

// SourcePerformanceResponse represents one entry of the performance ranking.
type SourcePerformanceResponse struct {
	SourceID     string  `json:"source_id"`
	Name         string  `json:"name"`
	NetProfit    float64 `json:"net_profit"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalExpense float64 `json:"total_expense"`
	TotalHours   float64 `json:"total_hours"`
	ROI          float64 `json:"roi"`
	HourlyRate   float64 `json:"hourly_rate"`
}

// SourceRankingResponse represents the source performance ranking.
type SourceRankingResponse struct {
	Ranking []SourcePerformanceResponse `json:"ranking"`
}

// PortfolioItemResponse represents one source's share of total revenue.
type PortfolioItemResponse struct {
	SourceID   string  `json:"source_id"`
	Name       string  `json:"name"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
}

// PortfolioResponse represents the revenue distribution report.
type PortfolioResponse struct {
	Items []PortfolioItemResponse `json:"items"`
}

// MonthStatsResponse represents one month's totals in the dashboard summary.
type MonthStatsResponse struct {
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	NetProfit  float64 `json:"net_profit"`
	TotalHours float64 `json:"total_hours"`
}

// ChangeRatesResponse represents the month-over-month change percentages.
type ChangeRatesResponse struct {
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	NetProfit  float64 `json:"net_profit"`
	TotalHours float64 `json:"total_hours"`
}

// DashboardSummaryResponse represents the dashboard month comparison.
type DashboardSummaryResponse struct {
	CurrentMonth  MonthStatsResponse  `json:"current_month"`
	PreviousMonth MonthStatsResponse  `json:"previous_month"`
	ChangeRate    ChangeRatesResponse `json:"change_rate"`
}

// SourceMonthRevenueResponse represents one (month, source) cell of the
// revenue-by-source trend.
type SourceMonthRevenueResponse struct {
	Month      string  `json:"month"`
	SourceID   string  `json:"source_id"`
	SourceName string  `json:"source_name"`
	Revenue    float64 `json:"revenue"`
}

// MonthlyRevenueBySourceResponse represents the top-sources revenue trend.
type MonthlyRevenueBySourceResponse struct {
	Rows []SourceMonthRevenueResponse `json:"rows"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *report.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Revenue:    output.Revenue.InexactFloat64(),
		Expense:    output.Expense.InexactFloat64(),
		NetProfit:  output.NetProfit.InexactFloat64(),
		TotalHours: output.TotalHours.InexactFloat64(),
		HourlyRate: output.HourlyRate.InexactFloat64(),
		ROI:        output.ROI.InexactFloat64(),
	}
}

// ToMonthlyStatsResponse converts monthly stats to a MonthlyStatsResponse DTO.
func ToMonthlyStatsResponse(stats []report.MonthlyStat) MonthlyStatsResponse {
	responses := make([]MonthlyStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = MonthlyStatResponse{
			Month:     stat.Month,
			Revenue:   stat.Revenue.InexactFloat64(),
			Expense:   stat.Expense.InexactFloat64(),
			NetProfit: stat.NetProfit.InexactFloat64(),
		}
	}
	return MonthlyStatsResponse{Stats: responses}
}

// ToSourceRankingResponse converts a ranking to a SourceRankingResponse DTO.
func ToSourceRankingResponse(output *report.GetSourceRankingOutput) SourceRankingResponse {
	responses := make([]SourcePerformanceResponse, len(output.Ranking))
	for i, perf := range output.Ranking {
		responses[i] = SourcePerformanceResponse{
			SourceID:     perf.SourceID.String(),
			Name:         perf.Name,
			NetProfit:    perf.NetProfit.InexactFloat64(),
			TotalRevenue: perf.TotalRevenue.InexactFloat64(),
			TotalExpense: perf.TotalExpense.InexactFloat64(),
			TotalHours:   perf.TotalHours.InexactFloat64(),
			ROI:          perf.ROI.InexactFloat64(),
			HourlyRate:   perf.HourlyRate.InexactFloat64(),
		}
	}
	return SourceRankingResponse{Ranking: responses}
}

// ToPortfolioResponse converts a portfolio to a PortfolioResponse DTO.
func ToPortfolioResponse(output *report.GetPortfolioOutput) PortfolioResponse {
	items := make([]PortfolioItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = PortfolioItemResponse{
			SourceID:   item.SourceID.String(),
			Name:       item.Name,
			Revenue:    item.Revenue.InexactFloat64(),
			Percentage: item.Percentage.InexactFloat64(),
		}
	}
	return PortfolioResponse{Items: items}
}

// ToDashboardSummaryResponse converts a dashboard summary to its DTO.
func ToDashboardSummaryResponse(output *report.GetDashboardSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		CurrentMonth:  toMonthStatsResponse(output.CurrentMonth),
		PreviousMonth: toMonthStatsResponse(output.PreviousMonth),
		ChangeRate: ChangeRatesResponse{
			Revenue:    output.ChangeRate.Revenue.InexactFloat64(),
			Expense:    output.ChangeRate.Expense.InexactFloat64(),
			NetProfit:  output.ChangeRate.NetProfit.InexactFloat64(),
			TotalHours: output.ChangeRate.TotalHours.InexactFloat64(),
		},
	}
}

// ToMonthlyRevenueBySourceResponse converts trend rows to their DTO.
func ToMonthlyRevenueBySourceResponse(output *report.GetMonthlyRevenueBySourceOutput) MonthlyRevenueBySourceResponse {
	rows := make([]SourceMonthRevenueResponse, len(output.Rows))
	for i, row := range output.Rows {
		rows[i] = SourceMonthRevenueResponse{
			Month:      row.Month,
			SourceID:   row.SourceID.String(),
			SourceName: row.SourceName,
			Revenue:    row.Revenue.InexactFloat64(),
		}
	}
	return MonthlyRevenueBySourceResponse{Rows: rows}
}

func toMonthStatsResponse(stats report.MonthStats) MonthStatsResponse {
	return MonthStatsResponse{
		Revenue:    stats.Revenue.InexactFloat64(),
		Expense:    stats.Expense.InexactFloat64(),
		NetProfit:  stats.NetProfit.InexactFloat64(),
		TotalHours: stats.TotalHours.InexactFloat64(),
	}
}
