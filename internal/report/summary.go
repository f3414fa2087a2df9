package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
)

// CategorySummary is the aggregated amount for one category within a single
// classification. Color is carried through for charting.
type CategorySummary struct {
	CategoryName string          `json:"category_name"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"total"`
}

// SummarizeByCategory groups entries of the given classification by category
// display name, summing paid amounts. Entries without a resolvable category
// fall into the Uncategorized sentinel group; they are never dropped.
//
// The result is sorted descending by total. Ties keep insertion order, so
// equal-amount groups appear in the order their first entry was seen.
// Empty input yields an empty slice, not nil.
func SummarizeByCategory(entries []*domain.Entry, categories map[string]*domain.Category, classification domain.Classification) []CategorySummary {
	summaries := make([]CategorySummary, 0)
	index := make(map[string]int)

	for _, e := range entries {
		if e == nil || e.Malformed() || e.Classification != classification {
			continue
		}

		name := domain.UncategorizedName
		color := domain.DefaultCategoryColor
		if cat, ok := categories[e.CategoryID]; ok && e.CategoryID != "" {
			name = cat.Name
			color = cat.DisplayColor()
		}

		i, ok := index[name]
		if !ok {
			i = len(summaries)
			index[name] = i
			summaries = append(summaries, CategorySummary{
				CategoryName: name,
				Color:        color,
				Total:        decimal.Zero,
			})
		}
		summaries[i].Total = summaries[i].Total.Add(e.PaidAmount)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total.GreaterThan(summaries[j].Total)
	})

	return summaries
}
