package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/infrastructure/metrics"
	"github.com/vixus/vixus/internal/report"
)

const defaultReportCacheTTL = 15 * time.Minute

// MonthlyReport is the assembled dashboard view for one calendar month.
type MonthlyReport struct {
	Year              int                      `json:"year"`
	Month             int                      `json:"month"`
	Buckets           []report.PeriodBucket    `json:"buckets"`
	IncomeByCategory  []report.CategorySummary `json:"income_by_category"`
	ExpenseByCategory []report.CategorySummary `json:"expense_by_category"`
	Totals            report.Totals            `json:"totals"`
	SkippedEntries    int                      `json:"skipped_entries"`
}

// AccountOverview is the account-type balance breakdown.
type AccountOverview struct {
	Totals report.AccountTotals `json:"totals"`
}

// ReportUseCase assembles reports from ledger and account data. The
// aggregation itself is pure; this layer only fetches collections, invokes
// the engine and caches the result.
type ReportUseCase struct {
	entryRepo    EntryRepository
	categoryRepo CategoryRepository
	accountRepo  AccountRepository
	cache        Cache
	metrics      *metrics.Metrics
	maxBuckets   int
	cacheTTL     time.Duration
}

// ReportOptions tunes report assembly. Zero values fall back to defaults.
type ReportOptions struct {
	MaxBuckets int
	CacheTTL   time.Duration
}

// NewReportUseCase creates a new ReportUseCase. cache and m may be nil.
func NewReportUseCase(entryRepo EntryRepository, categoryRepo CategoryRepository, accountRepo AccountRepository, cache Cache, m *metrics.Metrics, opts ReportOptions) *ReportUseCase {
	if opts.MaxBuckets <= 0 {
		opts.MaxBuckets = report.DefaultMaxBuckets
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultReportCacheTTL
	}

	return &ReportUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		cache:        cache,
		metrics:      m,
		maxBuckets:   opts.MaxBuckets,
		cacheTTL:     opts.CacheTTL,
	}
}

// MonthlyReport builds the bucketed month view with category summaries and
// totals. Results are cached per (year, month) and invalidated on entry
// writes.
func (uc *ReportUseCase) MonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}

	key := monthCacheKey(year, month)
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var cached MonthlyReport
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.countCache(true)
				return &cached, nil
			}
		}
		uc.countCache(false)
	}

	start := time.Now()

	var (
		entries    []*domain.Entry
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = uc.entryRepo.ListByMonth(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	buckets, skipped := report.BucketByDayN(entries, year, month, uc.maxBuckets)

	result := &MonthlyReport{
		Year:              year,
		Month:             int(month),
		Buckets:           buckets,
		IncomeByCategory:  report.SummarizeByCategory(entries, byID, domain.ClassificationIncome),
		ExpenseByCategory: report.SummarizeByCategory(entries, byID, domain.ClassificationExpense),
		Totals:            report.ComputeTotals(entries),
		SkippedEntries:    skipped,
	}

	if uc.metrics != nil {
		uc.metrics.ReportsBuilt.Inc()
		uc.metrics.ReportDuration.Observe(time.Since(start).Seconds())
		uc.metrics.SkippedEntries.Add(float64(skipped))
	}

	if uc.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
		}
	}

	return result, nil
}

// AccountOverview builds the account-type totals. Account balances are
// aggregated independently from ledger entries and never reconciled.
func (uc *ReportUseCase) AccountOverview(ctx context.Context) (*AccountOverview, error) {
	accounts, err := uc.accountRepo.List(ctx, 1000, 0)
	if err != nil {
		return nil, err
	}

	return &AccountOverview{
		Totals: report.ComputeAccountTotals(accounts),
	}, nil
}

// InvalidateMonth drops the cached report for the given month.
func (uc *ReportUseCase) InvalidateMonth(ctx context.Context, year int, month time.Month) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, monthCacheKey(year, month))
}

func (uc *ReportUseCase) countCache(hit bool) {
	if uc.metrics == nil {
		return
	}
	if hit {
		uc.metrics.ReportCacheHits.Inc()
	} else {
		uc.metrics.ReportCacheMisses.Inc()
	}
}

func monthCacheKey(year int, month time.Month) string {
	return fmt.Sprintf("report:monthly:%04d-%02d", year, int(month))
}
