// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sideincome-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
	"github.com/sideincome-tracker/backend/internal/integration/cache"
	"github.com/sideincome-tracker/backend/internal/integration/entrypoint/dto"
)

// ReportController handles the report and dashboard endpoints. Responses are
// cached read-through; the write endpoints invalidate the cache.
type ReportController struct {
	summaryUseCase         *report.GetSummaryUseCase
	monthlyStatsUseCase    *report.GetMonthlyStatsUseCase
	sourceMonthlyUseCase   *report.GetSourceMonthlyStatsUseCase
	rankingUseCase         *report.GetSourceRankingUseCase
	portfolioUseCase       *report.GetPortfolioUseCase
	dashboardUseCase       *report.GetDashboardSummaryUseCase
	revenueBySourceUseCase *report.GetMonthlyRevenueBySourceUseCase
	reportCache            *cache.ReportCache
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	monthlyStatsUseCase *report.GetMonthlyStatsUseCase,
	sourceMonthlyUseCase *report.GetSourceMonthlyStatsUseCase,
	rankingUseCase *report.GetSourceRankingUseCase,
	portfolioUseCase *report.GetPortfolioUseCase,
	dashboardUseCase *report.GetDashboardSummaryUseCase,
	revenueBySourceUseCase *report.GetMonthlyRevenueBySourceUseCase,
	reportCache *cache.ReportCache,
) *ReportController {
	return &ReportController{
		summaryUseCase:         summaryUseCase,
		monthlyStatsUseCase:    monthlyStatsUseCase,
		sourceMonthlyUseCase:   sourceMonthlyUseCase,
		rankingUseCase:         rankingUseCase,
		portfolioUseCase:       portfolioUseCase,
		dashboardUseCase:       dashboardUseCase,
		revenueBySourceUseCase: revenueBySourceUseCase,
		reportCache:            reportCache,
	}
}

// Summary handles GET /income-sources/:id/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	id, ok := parseSourceID(ctx)
	if !ok {
		return
	}
	year, err := intQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	month, err := intQuery(ctx, "month")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("summary", id.String(), ctx.Request.URL.RawQuery)
	var cached dto.SummaryResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.GetSummaryInput{
		SourceID: id,
		Year:     year,
		Month:    month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToSummaryResponse(output)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// SourceMonthlyStats handles GET /income-sources/:id/monthly-stats requests.
func (c *ReportController) SourceMonthlyStats(ctx *gin.Context) {
	id, ok := parseSourceID(ctx)
	if !ok {
		return
	}
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("source-monthly-stats", id.String(), ctx.Request.URL.RawQuery)
	var cached dto.MonthlyStatsResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.sourceMonthlyUseCase.Execute(ctx.Request.Context(), report.GetSourceMonthlyStatsInput{
		SourceID: id,
		Limit:    limit,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToMonthlyStatsResponse(output.Stats)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// MonthlyStats handles GET /dashboard/monthly-stats requests.
func (c *ReportController) MonthlyStats(ctx *gin.Context) {
	year, err := intQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("monthly-stats", ctx.Request.URL.RawQuery)
	var cached dto.MonthlyStatsResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.monthlyStatsUseCase.Execute(ctx.Request.Context(), report.GetMonthlyStatsInput{
		Year:      year,
		Limit:     limit,
		StartDate: strQuery(ctx, "startDate"),
		EndDate:   strQuery(ctx, "endDate"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToMonthlyStatsResponse(output.Stats)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// SourceRanking handles GET /dashboard/source-ranking requests.
func (c *ReportController) SourceRanking(ctx *gin.Context) {
	year, err := intQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	month, err := intQuery(ctx, "month")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("source-ranking", ctx.Request.URL.RawQuery)
	var cached dto.SourceRankingResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.rankingUseCase.Execute(ctx.Request.Context(), report.GetSourceRankingInput{
		Year:      year,
		Month:     month,
		StartDate: strQuery(ctx, "startDate"),
		EndDate:   strQuery(ctx, "endDate"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToSourceRankingResponse(output)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// Portfolio handles GET /dashboard/portfolio requests.
func (c *ReportController) Portfolio(ctx *gin.Context) {
	year, err := intQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	month, err := intQuery(ctx, "month")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("portfolio", ctx.Request.URL.RawQuery)
	var cached dto.PortfolioResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.portfolioUseCase.Execute(ctx.Request.Context(), report.GetPortfolioInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToPortfolioResponse(output)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// DashboardSummary handles GET /dashboard/summary requests.
func (c *ReportController) DashboardSummary(ctx *gin.Context) {
	year, err := intQuery(ctx, "year")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	month, err := intQuery(ctx, "month")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("dashboard-summary", ctx.Request.URL.RawQuery)
	var cached dto.DashboardSummaryResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.GetDashboardSummaryInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToDashboardSummaryResponse(output)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

// MonthlyRevenueBySource handles GET /dashboard/monthly-revenue-by-source requests.
func (c *ReportController) MonthlyRevenueBySource(ctx *gin.Context) {
	limit, err := intQuery(ctx, "limit")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	key := cache.Key("monthly-revenue-by-source", ctx.Request.URL.RawQuery)
	var cached dto.MonthlyRevenueBySourceResponse
	if c.reportCache.Get(ctx.Request.Context(), key, &cached) {
		ctx.JSON(http.StatusOK, cached)
		return
	}

	output, err := c.revenueBySourceUseCase.Execute(ctx.Request.Context(), report.GetMonthlyRevenueBySourceInput{
		Limit:     limit,
		StartDate: strQuery(ctx, "startDate"),
		EndDate:   strQuery(ctx, "endDate"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToMonthlyRevenueBySourceResponse(output)
	c.reportCache.Set(ctx.Request.Context(), key, response)
	ctx.JSON(http.StatusOK, response)
}

func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		// Every report error is a bad request parameter.
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	var srcErr *domainerror.SourceError
	if errors.As(err, &srcErr) {
		ctx.JSON(statusCodeForSourceError(srcErr.Code), dto.ErrorResponse{
			Error: srcErr.Message,
			Code:  string(srcErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
