package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated prometheus.Counter
	EntriesSettled prometheus.Counter
	EntryErrors    *prometheus.CounterVec

	// Account metrics
	AccountsCreated    prometheus.Counter
	BalanceAdjustments *prometheus.CounterVec

	// Report metrics
	ReportsBuilt      prometheus.Counter
	ReportDuration    prometheus.Histogram
	ReportCacheHits   prometheus.Counter
	ReportCacheMisses prometheus.Counter
	SkippedEntries    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_entries_created_total",
			Help: "Total number of ledger entries created",
		}),
		EntriesSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_entries_settled_total",
			Help: "Total number of ledger entries settled",
		}),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vixus_entry_errors_total",
				Help: "Total number of entry errors by type",
			},
			[]string{"error_type"},
		),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		BalanceAdjustments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vixus_balance_adjustments_total",
				Help: "Total balance adjustments by direction",
			},
			[]string{"direction"},
		),

		ReportsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_reports_built_total",
			Help: "Total number of monthly reports assembled",
		}),
		ReportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vixus_report_duration_seconds",
			Help:    "Duration of report assembly",
			Buckets: prometheus.DefBuckets,
		}),
		ReportCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_report_cache_hits_total",
			Help: "Total report cache hits",
		}),
		ReportCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_report_cache_misses_total",
			Help: "Total report cache misses",
		}),
		SkippedEntries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vixus_report_skipped_entries_total",
			Help: "Total malformed entries skipped during aggregation",
		}),
	}
}
