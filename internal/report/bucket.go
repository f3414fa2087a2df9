// Package report implements the financial aggregation engine: period
// bucketing, category summaries, totals and presentation formatting.
// All functions are pure and total; they never error on well-typed input.
// Malformed entries are skipped and counted, never a reason to abort.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
)

// DefaultMaxBuckets bounds how many buckets a month condenses into. Daily
// granularity is traded for a fixed visual resolution on charts.
const DefaultMaxBuckets = 10

// PeriodBucket is one rendered slice of a month: a single day, or a run of
// consecutive days after condensation.
type PeriodBucket struct {
	Label             string          `json:"label"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	PeriodBalance     decimal.Decimal `json:"period_balance"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`

	firstDay int
}

// BucketByDay groups entries of the given calendar month into at most
// DefaultMaxBuckets ordered buckets.
func BucketByDay(entries []*domain.Entry, year int, month time.Month) []PeriodBucket {
	buckets, _ := BucketByDayN(entries, year, month, DefaultMaxBuckets)
	return buckets
}

// BucketByDayN is BucketByDay with a configurable bucket bound. It also
// returns how many malformed entries were skipped so callers can log it.
//
// One bucket is produced per calendar day, entries outside the month are
// silently excluded, and when the month has more days than maxBuckets,
// consecutive days are merged into chunks of ceil(days/maxBuckets). The
// cumulative balance is a running sum over the final sequence.
func BucketByDayN(entries []*domain.Entry, year int, month time.Month, maxBuckets int) ([]PeriodBucket, int) {
	if maxBuckets <= 0 {
		maxBuckets = DefaultMaxBuckets
	}

	days := daysInMonth(year, month)

	daily := make([]PeriodBucket, days)
	for i := range daily {
		daily[i] = PeriodBucket{
			Label:    fmt.Sprintf("%d/%d", i+1, int(month)),
			Income:   decimal.Zero,
			Expense:  decimal.Zero,
			firstDay: i + 1,
		}
	}

	skipped := 0
	for _, e := range entries {
		if e == nil || e.Malformed() {
			skipped++
			continue
		}
		if !e.InMonth(year, month) {
			continue
		}

		b := &daily[e.ReferenceDate.Day()-1]
		if e.Classification == domain.ClassificationIncome {
			b.Income = b.Income.Add(e.PaidAmount)
		} else {
			b.Expense = b.Expense.Add(e.PaidAmount)
		}
	}

	for i := range daily {
		daily[i].PeriodBalance = daily[i].Income.Sub(daily[i].Expense)
	}

	// Buckets are generated in day order already; re-sorting keeps the
	// ordering invariant independent of how they were filled.
	sort.SliceStable(daily, func(i, j int) bool {
		return daily[i].firstDay < daily[j].firstDay
	})

	buckets := daily
	if days > maxBuckets {
		buckets = condense(daily, (days+maxBuckets-1)/maxBuckets, month)
	}

	running := decimal.Zero
	for i := range buckets {
		running = running.Add(buckets[i].PeriodBalance)
		buckets[i].CumulativeBalance = running
	}

	return buckets, skipped
}

// condense merges consecutive daily buckets into chunks of chunkSize days.
func condense(daily []PeriodBucket, chunkSize int, month time.Month) []PeriodBucket {
	condensed := make([]PeriodBucket, 0, (len(daily)+chunkSize-1)/chunkSize)

	for start := 0; start < len(daily); start += chunkSize {
		end := start + chunkSize
		if end > len(daily) {
			end = len(daily)
		}

		chunk := PeriodBucket{
			Income:   decimal.Zero,
			Expense:  decimal.Zero,
			firstDay: daily[start].firstDay,
		}
		for _, d := range daily[start:end] {
			chunk.Income = chunk.Income.Add(d.Income)
			chunk.Expense = chunk.Expense.Add(d.Expense)
		}
		chunk.PeriodBalance = chunk.Income.Sub(chunk.Expense)

		firstDay := daily[start].firstDay
		lastDay := daily[end-1].firstDay
		if firstDay == lastDay {
			chunk.Label = fmt.Sprintf("%d/%d", firstDay, int(month))
		} else {
			chunk.Label = fmt.Sprintf("%d-%d/%d", firstDay, lastDay, int(month))
		}

		condensed = append(condensed, chunk)
	}

	return condensed
}

// daysInMonth returns the number of days in the given month, Gregorian
// rules, leap years included.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
