// Package report contains the reporting use cases: aggregated metrics over
// income sources and their transactions.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sideincome-tracker/backend/internal/application/adapter"
	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeSourceRepo struct {
	sources map[uuid.UUID]*entity.IncomeSource
}

func newFakeSourceRepo(sources ...*entity.IncomeSource) *fakeSourceRepo {
	repo := &fakeSourceRepo{sources: make(map[uuid.UUID]*entity.IncomeSource)}
	for _, s := range sources {
		repo.sources[s.ID] = s
	}
	return repo
}

func (r *fakeSourceRepo) Create(_ context.Context, source *entity.IncomeSource) error {
	r.sources[source.ID] = source
	return nil
}

func (r *fakeSourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	source, ok := r.sources[id]
	if !ok {
		return nil, domainerror.ErrSourceNotFound
	}
	return source, nil
}

func (r *fakeSourceRepo) FindAll(_ context.Context) ([]*entity.IncomeSource, error) {
	all := make([]*entity.IncomeSource, 0, len(r.sources))
	for _, s := range r.sources {
		all = append(all, s)
	}
	return all, nil
}

func (r *fakeSourceRepo) Update(_ context.Context, source *entity.IncomeSource) error {
	r.sources[source.ID] = source
	return nil
}

func (r *fakeSourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sources, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	lastFilter   adapter.TransactionFilter
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, tx := range r.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Find(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	r.lastFilter = filter
	var out []*entity.Transaction
	for _, tx := range r.transactions {
		if filter.SourceID != nil && tx.SourceID != *filter.SourceID {
			continue
		}
		if filter.StartDate != nil && tx.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && tx.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Type != nil && tx.Type != *filter.Type {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }

// fakeReportRepo returns canned aggregate rows and records the queried window.
type fakeReportRepo struct {
	monthly       []MonthlyAggregate
	sourceMonthly []MonthlyAggregate
	totalsByMonth map[string]*PeriodTotals
	bySource      []SourceAggregate
	topSources    []SourceRevenue
	bySourceMonth []SourceMonthlyRevenue

	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeReportRepo) SumByMonth(_ context.Context, start, end time.Time, _ bool) ([]MonthlyAggregate, error) {
	r.lastStart, r.lastEnd = start, end
	return r.monthly, nil
}

func (r *fakeReportRepo) SumByMonthForSource(_ context.Context, _ uuid.UUID, start, end time.Time) ([]MonthlyAggregate, error) {
	r.lastStart, r.lastEnd = start, end
	return r.sourceMonthly, nil
}

func (r *fakeReportRepo) SumByPeriod(_ context.Context, filter PeriodFilter) (*PeriodTotals, error) {
	if filter.Start != nil {
		if totals, ok := r.totalsByMonth[filter.Start.Format(MonthKeyFormat)]; ok {
			return totals, nil
		}
	}
	return &PeriodTotals{
		Revenue:    decimal.Zero,
		Expense:    decimal.Zero,
		TotalHours: decimal.Zero,
	}, nil
}

func (r *fakeReportRepo) SumBySource(_ context.Context, start, end time.Time, _ bool) ([]SourceAggregate, error) {
	r.lastStart, r.lastEnd = start, end
	return r.bySource, nil
}

func (r *fakeReportRepo) TopRevenueSources(_ context.Context, start, end time.Time, limit int) ([]SourceRevenue, error) {
	r.lastStart, r.lastEnd = start, end
	if len(r.topSources) > limit {
		return r.topSources[:limit], nil
	}
	return r.topSources, nil
}

func (r *fakeReportRepo) MonthlyRevenueBySources(_ context.Context, _ []uuid.UUID, start, end time.Time) ([]SourceMonthlyRevenue, error) {
	r.lastStart, r.lastEnd = start, end
	return r.bySourceMonth, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestGetSummaryUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	source := entity.NewIncomeSource("Freelance Dev", entity.IncomeSourceTypeFreelance, "")

	t.Run("computes all six metrics from the transaction list", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(source.ID, entity.TransactionTypeRevenue, dec("100000"), date(2024, time.March, 5), "invoice", false, decPtr("10")),
			entity.NewTransaction(source.ID, entity.TransactionTypeRevenue, dec("50000"), date(2024, time.March, 20), "invoice", false, decPtr("5")),
			entity.NewTransaction(source.ID, entity.TransactionTypeExpense, dec("20000"), date(2024, time.March, 25), "tooling", false, nil),
		}}
		uc := NewGetSummaryUseCase(newFakeSourceRepo(source), txRepo, clock)

		out, err := uc.Execute(context.Background(), GetSummaryInput{SourceID: source.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Revenue.Equal(dec("150000")) {
			t.Errorf("expected revenue 150000, got %s", out.Revenue)
		}
		if !out.Expense.Equal(dec("20000")) {
			t.Errorf("expected expense 20000, got %s", out.Expense)
		}
		if !out.NetProfit.Equal(dec("130000")) {
			t.Errorf("expected net profit 130000, got %s", out.NetProfit)
		}
		if !out.TotalHours.Equal(dec("15")) {
			t.Errorf("expected 15 hours, got %s", out.TotalHours)
		}
		if !out.HourlyRate.Equal(dec("8667")) {
			t.Errorf("expected hourly rate 8667, got %s", out.HourlyRate)
		}
		if !out.ROI.Equal(dec("650.0")) {
			t.Errorf("expected roi 650.0, got %s", out.ROI)
		}
	})

	t.Run("zero hours yields zero hourly rate", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(source.ID, entity.TransactionTypeRevenue, dec("1000"), date(2024, time.March, 5), "invoice", false, nil),
		}}
		uc := NewGetSummaryUseCase(newFakeSourceRepo(source), txRepo, clock)

		out, err := uc.Execute(context.Background(), GetSummaryInput{SourceID: source.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.HourlyRate.IsZero() {
			t.Errorf("expected zero hourly rate, got %s", out.HourlyRate)
		}
		if !out.ROI.IsZero() {
			t.Errorf("expected zero roi with no expenses, got %s", out.ROI)
		}
	})

	t.Run("month parameter narrows the window", func(t *testing.T) {
		txRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
			entity.NewTransaction(source.ID, entity.TransactionTypeRevenue, dec("1000"), date(2024, time.March, 5), "in window", false, nil),
			entity.NewTransaction(source.ID, entity.TransactionTypeRevenue, dec("9999"), date(2024, time.April, 1), "out of window", false, nil),
		}}
		uc := NewGetSummaryUseCase(newFakeSourceRepo(source), txRepo, clock)

		out, err := uc.Execute(context.Background(), GetSummaryInput{
			SourceID: source.ID,
			Year:     intPtr(2024),
			Month:    intPtr(3),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Revenue.Equal(dec("1000")) {
			t.Errorf("expected only march revenue, got %s", out.Revenue)
		}
	})

	t.Run("unknown source yields not-found", func(t *testing.T) {
		uc := NewGetSummaryUseCase(newFakeSourceRepo(), &fakeTransactionRepo{}, clock)

		_, err := uc.Execute(context.Background(), GetSummaryInput{SourceID: uuid.New()})
		if !errors.Is(err, domainerror.ErrSourceNotFound) {
			t.Errorf("expected ErrSourceNotFound, got %v", err)
		}
	})
}

func TestGetMonthlyStatsUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}

	t.Run("zero-fills months without transactions", func(t *testing.T) {
		repo := &fakeReportRepo{monthly: []MonthlyAggregate{
			{Month: "2024-01", Revenue: dec("500"), Expense: dec("100")},
			{Month: "2024-03", Revenue: dec("200"), Expense: dec("0")},
		}}
		uc := NewGetMonthlyStatsUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetMonthlyStatsInput{
			StartDate: strPtr("2024-01-01"),
			EndDate:   strPtr("2024-03-31"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Stats) != 3 {
			t.Fatalf("expected 3 month buckets, got %d", len(out.Stats))
		}
		if out.Stats[0].Month != "2024-01" || !out.Stats[0].NetProfit.Equal(dec("400")) {
			t.Errorf("unexpected first bucket: %+v", out.Stats[0])
		}
		if out.Stats[1].Month != "2024-02" || !out.Stats[1].Revenue.IsZero() || !out.Stats[1].Expense.IsZero() {
			t.Errorf("expected zero-filled 2024-02, got %+v", out.Stats[1])
		}
		if out.Stats[2].Month != "2024-03" || !out.Stats[2].NetProfit.Equal(dec("200")) {
			t.Errorf("unexpected last bucket: %+v", out.Stats[2])
		}
	})

	t.Run("defaults to the current year", func(t *testing.T) {
		repo := &fakeReportRepo{}
		uc := NewGetMonthlyStatsUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetMonthlyStatsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Stats) != 12 {
			t.Fatalf("expected 12 buckets for a year, got %d", len(out.Stats))
		}
		if repo.lastStart.Year() != 2024 || repo.lastStart.Month() != time.January {
			t.Errorf("expected query from Jan 2024, got %v", repo.lastStart)
		}
	})

	t.Run("invalid range never reaches the store", func(t *testing.T) {
		repo := &fakeReportRepo{}
		uc := NewGetMonthlyStatsUseCase(repo, clock)

		_, err := uc.Execute(context.Background(), GetMonthlyStatsInput{
			StartDate: strPtr("2024-05-01"),
			EndDate:   strPtr("2024-01-01"),
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
		if !repo.lastStart.IsZero() {
			t.Error("expected no store query after validation failure")
		}
	})
}

func TestGetSourceRankingUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	idA, idB := uuid.New(), uuid.New()

	t.Run("ranks by net profit and derives efficiency metrics", func(t *testing.T) {
		repo := &fakeReportRepo{bySource: []SourceAggregate{
			{SourceID: idA, Name: "A", NetProfit: dec("50000"), TotalRevenue: dec("60000"), TotalExpense: dec("10000"), TotalHours: dec("5")},
			{SourceID: idB, Name: "B", NetProfit: dec("80000"), TotalRevenue: dec("80000"), TotalExpense: dec("0"), TotalHours: dec("8")},
		}}
		uc := NewGetSourceRankingUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetSourceRankingInput{Year: intPtr(2024)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Ranking) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out.Ranking))
		}
		if out.Ranking[0].SourceID != idB {
			t.Errorf("expected B ranked first, got %s", out.Ranking[0].Name)
		}
		if !out.Ranking[0].HourlyRate.Equal(dec("10000")) {
			t.Errorf("expected B hourly rate 10000, got %s", out.Ranking[0].HourlyRate)
		}
		if !out.Ranking[0].ROI.IsZero() {
			t.Errorf("expected zero roi with no expense, got %s", out.Ranking[0].ROI)
		}
		if !out.Ranking[1].HourlyRate.Equal(dec("10000")) {
			t.Errorf("expected A hourly rate 10000, got %s", out.Ranking[1].HourlyRate)
		}
		if !out.Ranking[1].ROI.Equal(dec("500.0")) {
			t.Errorf("expected A roi 500.0, got %s", out.Ranking[1].ROI)
		}
	})

	t.Run("ties keep store order", func(t *testing.T) {
		repo := &fakeReportRepo{bySource: []SourceAggregate{
			{SourceID: idA, Name: "A", NetProfit: dec("100")},
			{SourceID: idB, Name: "B", NetProfit: dec("100")},
		}}
		uc := NewGetSourceRankingUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetSourceRankingInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Ranking[0].SourceID != idA || out.Ranking[1].SourceID != idB {
			t.Error("expected tied entries to keep their original order")
		}
	})
}

func TestGetPortfolioUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	idA, idB := uuid.New(), uuid.New()

	t.Run("computes each source's revenue share", func(t *testing.T) {
		repo := &fakeReportRepo{bySource: []SourceAggregate{
			{SourceID: idA, Name: "A", TotalRevenue: dec("30000")},
			{SourceID: idB, Name: "B", TotalRevenue: dec("90000")},
		}}
		uc := NewGetPortfolioUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetPortfolioInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(out.Items))
		}
		if out.Items[0].SourceID != idB {
			t.Errorf("expected highest revenue first, got %s", out.Items[0].Name)
		}
		if !out.Items[0].Percentage.Equal(dec("75.0")) {
			t.Errorf("expected 75.0%%, got %s", out.Items[0].Percentage)
		}
		if !out.Items[1].Percentage.Equal(dec("25.0")) {
			t.Errorf("expected 25.0%%, got %s", out.Items[1].Percentage)
		}
	})

	t.Run("zero total revenue yields zero percentages", func(t *testing.T) {
		repo := &fakeReportRepo{bySource: []SourceAggregate{
			{SourceID: idA, Name: "A", TotalRevenue: dec("0"), TotalExpense: dec("500")},
		}}
		uc := NewGetPortfolioUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetPortfolioInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Items[0].Percentage.IsZero() {
			t.Errorf("expected zero percentage, got %s", out.Items[0].Percentage)
		}
	})
}

func TestGetDashboardSummaryUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}

	t.Run("compares target month against the previous one", func(t *testing.T) {
		repo := &fakeReportRepo{totalsByMonth: map[string]*PeriodTotals{
			"2024-06": {Revenue: dec("115.5"), Expense: dec("50"), TotalHours: dec("10")},
			"2024-05": {Revenue: dec("100"), Expense: dec("0"), TotalHours: dec("10")},
		}}
		uc := NewGetDashboardSummaryUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetDashboardSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.CurrentMonth.NetProfit.Equal(dec("65.5")) {
			t.Errorf("expected current net profit 65.5, got %s", out.CurrentMonth.NetProfit)
		}
		if !out.ChangeRate.Revenue.Equal(dec("16")) {
			t.Errorf("expected revenue change 16, got %s", out.ChangeRate.Revenue)
		}
		if !out.ChangeRate.Expense.Equal(dec("100")) {
			t.Errorf("expected expense change 100 from a zero base, got %s", out.ChangeRate.Expense)
		}
		if !out.ChangeRate.TotalHours.IsZero() {
			t.Errorf("expected zero hours change, got %s", out.ChangeRate.TotalHours)
		}
	})

	t.Run("january compares against december of the prior year", func(t *testing.T) {
		repo := &fakeReportRepo{totalsByMonth: map[string]*PeriodTotals{
			"2024-01": {Revenue: dec("200"), Expense: dec("0"), TotalHours: dec("0")},
			"2023-12": {Revenue: dec("100"), Expense: dec("0"), TotalHours: dec("0")},
		}}
		uc := NewGetDashboardSummaryUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetDashboardSummaryInput{
			Year:  intPtr(2024),
			Month: intPtr(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.PreviousMonth.Revenue.Equal(dec("100")) {
			t.Errorf("expected december 2023 revenue, got %s", out.PreviousMonth.Revenue)
		}
		if !out.ChangeRate.Revenue.Equal(dec("100")) {
			t.Errorf("expected revenue change 100, got %s", out.ChangeRate.Revenue)
		}
	})

	t.Run("invalid month is rejected", func(t *testing.T) {
		uc := NewGetDashboardSummaryUseCase(&fakeReportRepo{}, clock)

		_, err := uc.Execute(context.Background(), GetDashboardSummaryInput{Month: intPtr(0)})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}

func TestGetMonthlyRevenueBySourceUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	idA, idB := uuid.New(), uuid.New()

	t.Run("zero-fills every month for every top source", func(t *testing.T) {
		repo := &fakeReportRepo{
			topSources: []SourceRevenue{
				{SourceID: idA, Name: "A", Total: dec("900")},
				{SourceID: idB, Name: "B", Total: dec("100")},
			},
			bySourceMonth: []SourceMonthlyRevenue{
				{SourceID: idA, Name: "A", Month: "2024-01", Revenue: dec("900")},
				{SourceID: idB, Name: "B", Month: "2024-02", Revenue: dec("100")},
			},
		}
		uc := NewGetMonthlyRevenueBySourceUseCase(repo, clock)

		out, err := uc.Execute(context.Background(), GetMonthlyRevenueBySourceInput{
			StartDate: strPtr("2024-01-01"),
			EndDate:   strPtr("2024-02-29"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2 months x 2 sources.
		if len(out.Rows) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(out.Rows))
		}
		if out.Rows[0].Month != "2024-01" || out.Rows[0].SourceID != idA || !out.Rows[0].Revenue.Equal(dec("900")) {
			t.Errorf("unexpected first row: %+v", out.Rows[0])
		}
		if out.Rows[1].SourceID != idB || !out.Rows[1].Revenue.IsZero() {
			t.Errorf("expected zero-filled B in 2024-01, got %+v", out.Rows[1])
		}
		if out.Rows[3].Month != "2024-02" || !out.Rows[3].Revenue.Equal(dec("100")) {
			t.Errorf("unexpected last row: %+v", out.Rows[3])
		}
	})

	t.Run("no sources yields an empty row set", func(t *testing.T) {
		uc := NewGetMonthlyRevenueBySourceUseCase(&fakeReportRepo{}, clock)

		out, err := uc.Execute(context.Background(), GetMonthlyRevenueBySourceInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Rows == nil || len(out.Rows) != 0 {
			t.Errorf("expected empty non-nil rows, got %v", out.Rows)
		}
	})
}

func TestGetSourceMonthlyStatsUseCase(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "")

	t.Run("defaults to the recent six months", func(t *testing.T) {
		repo := &fakeReportRepo{sourceMonthly: []MonthlyAggregate{
			{Month: "2024-03", Revenue: dec("120"), Expense: dec("20")},
		}}
		uc := NewGetSourceMonthlyStatsUseCase(newFakeSourceRepo(source), repo, clock)

		out, err := uc.Execute(context.Background(), GetSourceMonthlyStatsInput{SourceID: source.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Stats) != 6 {
			t.Fatalf("expected 6 month buckets, got %d", len(out.Stats))
		}
		if out.Stats[0].Month != "2024-01" || out.Stats[5].Month != "2024-06" {
			t.Errorf("unexpected window: %s - %s", out.Stats[0].Month, out.Stats[5].Month)
		}
		if !out.Stats[2].NetProfit.Equal(dec("100")) {
			t.Errorf("expected march net profit 100, got %s", out.Stats[2].NetProfit)
		}
	})

	t.Run("unknown source yields not-found", func(t *testing.T) {
		uc := NewGetSourceMonthlyStatsUseCase(newFakeSourceRepo(), &fakeReportRepo{}, clock)

		_, err := uc.Execute(context.Background(), GetSourceMonthlyStatsInput{SourceID: uuid.New()})
		if !errors.Is(err, domainerror.ErrSourceNotFound) {
			t.Errorf("expected ErrSourceNotFound, got %v", err)
		}
	})
}
