// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sideincome-tracker/backend/config"
	"github.com/sideincome-tracker/backend/internal/application/usecase/report"
	"github.com/sideincome-tracker/backend/internal/application/usecase/source"
	"github.com/sideincome-tracker/backend/internal/application/usecase/transaction"
	"github.com/sideincome-tracker/backend/internal/integration/cache"
	"github.com/sideincome-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/sideincome-tracker/backend/internal/integration/persistence"
	"github.com/sideincome-tracker/backend/internal/infra/server/router"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router
}

// NewInjector wires up all application dependencies.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	dbHealthChecker func() bool,
	cacheHealthChecker func() bool,
) *Injector {
	// Repositories
	sourceRepository := persistence.NewIncomeSourceRepository(db)
	transactionRepository := persistence.NewTransactionRepository(db)
	reportRepository := persistence.NewReportRepository(db)

	reportCache := cache.NewReportCache(redisClient, cfg.Cache.ReportTTL)
	clock := report.SystemClock{}

	// Source use cases
	createSourceUseCase := source.NewCreateSourceUseCase(sourceRepository)
	listSourcesUseCase := source.NewListSourcesUseCase(sourceRepository)
	getSourceUseCase := source.NewGetSourceUseCase(sourceRepository)
	updateSourceUseCase := source.NewUpdateSourceUseCase(sourceRepository)
	deleteSourceUseCase := source.NewDeleteSourceUseCase(sourceRepository)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(sourceRepository, transactionRepository)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepository)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepository)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepository)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepository)

	// Report use cases
	getSummaryUseCase := report.NewGetSummaryUseCase(sourceRepository, transactionRepository, clock)
	getMonthlyStatsUseCase := report.NewGetMonthlyStatsUseCase(reportRepository, clock)
	getSourceMonthlyStatsUseCase := report.NewGetSourceMonthlyStatsUseCase(sourceRepository, reportRepository, clock)
	getSourceRankingUseCase := report.NewGetSourceRankingUseCase(reportRepository, clock)
	getPortfolioUseCase := report.NewGetPortfolioUseCase(reportRepository, clock)
	getDashboardSummaryUseCase := report.NewGetDashboardSummaryUseCase(reportRepository, clock)
	getMonthlyRevenueBySourceUseCase := report.NewGetMonthlyRevenueBySourceUseCase(reportRepository, clock)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)
	sourceController := controller.NewSourceController(
		createSourceUseCase,
		listSourcesUseCase,
		getSourceUseCase,
		updateSourceUseCase,
		deleteSourceUseCase,
		reportCache,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		reportCache,
	)
	reportController := controller.NewReportController(
		getSummaryUseCase,
		getMonthlyStatsUseCase,
		getSourceMonthlyStatsUseCase,
		getSourceRankingUseCase,
		getPortfolioUseCase,
		getDashboardSummaryUseCase,
		getMonthlyRevenueBySourceUseCase,
		reportCache,
	)

	appRouter := router.NewRouter(
		healthController,
		sourceController,
		transactionController,
		reportController,
	)

	return &Injector{
		Config: cfg,
		Router: appRouter,
	}
}
