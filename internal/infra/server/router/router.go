// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sideincome-tracker/backend/internal/integration/entrypoint/controller"
)

// Router wraps the Gin engine and handles route configuration.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	sourceController      *controller.SourceController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
}

// NewRouter creates a new router instance.
func NewRouter(
	healthController *controller.HealthController,
	sourceController *controller.SourceController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
) *Router {
	return &Router{
		healthController:      healthController,
		sourceController:      sourceController,
		transactionController: transactionController,
		reportController:      reportController,
	}
}

// Setup configures all routes and returns the Gin engine.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	engine.GET("/health", r.healthController.Check)

	v1 := engine.Group("/api/v1")
	{
		if r.sourceController != nil {
			sources := v1.Group("/income-sources")
			{
				sources.POST("", r.sourceController.Create)
				sources.GET("", r.sourceController.List)
				sources.GET("/:id", r.sourceController.Get)
				sources.PATCH("/:id", r.sourceController.Update)
				sources.DELETE("/:id", r.sourceController.Delete)
			}
		}

		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.POST("", r.transactionController.Create)
				transactions.GET("", r.transactionController.List)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.reportController != nil {
			sources := v1.Group("/income-sources")
			{
				sources.GET("/:id/summary", r.reportController.Summary)
				sources.GET("/:id/monthly-stats", r.reportController.SourceMonthlyStats)
			}

			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/summary", r.reportController.DashboardSummary)
				dashboard.GET("/monthly-stats", r.reportController.MonthlyStats)
				dashboard.GET("/source-ranking", r.reportController.SourceRanking)
				dashboard.GET("/portfolio", r.reportController.Portfolio)
				dashboard.GET("/monthly-revenue-by-source", r.reportController.MonthlyRevenueBySource)
			}
		}
	}

	r.engine = engine
	return engine
}

// Engine returns the configured Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
