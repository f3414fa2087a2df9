package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/report"
	"github.com/vixus/vixus/internal/usecase"
)

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID              string          `json:"id"`
	ReferenceDate   time.Time       `json:"reference_date"`
	Classification  string          `json:"classification"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	LateInterest    decimal.Decimal `json:"late_interest"`
	CategoryID      string          `json:"category_id,omitempty"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	PaymentStatus   string          `json:"payment_status"`
	EntryType       string          `json:"entry_type"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EntryFromDomain converts a domain entry to a response. The payment
// status is resolved against now so pending-past-due reads as overdue.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	var dueDate *time.Time
	if !e.DueDate.IsZero() {
		d := e.DueDate
		dueDate = &d
	}

	return &EntryResponse{
		ID:              e.ID,
		ReferenceDate:   e.ReferenceDate,
		Classification:  string(e.Classification),
		PaidAmount:      e.PaidAmount,
		OriginalAmount:  e.OriginalAmount,
		LateInterest:    e.LateInterest,
		CategoryID:      e.CategoryID,
		SupplierID:      e.SupplierID,
		PaymentMethodID: e.PaymentMethodID,
		Description:     e.Description,
		DueDate:         dueDate,
		PaymentDate:     e.PaymentDate,
		PaymentStatus:   string(e.EffectiveStatus(time.Now().UTC())),
		EntryType:       string(e.EntryType),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ListEntriesResponse wraps an entry list.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	ParentID  string    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		Color:     c.DisplayColor(),
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account list.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

// PeriodBucketResponse is a period bucket with display strings attached.
type PeriodBucketResponse struct {
	Label             string          `json:"label"`
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	PeriodBalance     decimal.Decimal `json:"period_balance"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
	IncomeDisplay     string          `json:"income_display"`
	ExpenseDisplay    string          `json:"expense_display"`
	BalanceDisplay    string          `json:"balance_display"`
}

// CategorySummaryResponse is a category summary with a display string.
type CategorySummaryResponse struct {
	CategoryName string          `json:"category_name"`
	Color        string          `json:"color"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"total_display"`
}

// TotalsResponse carries window totals with display strings.
type TotalsResponse struct {
	TotalIncome         decimal.Decimal `json:"total_income"`
	TotalExpense        decimal.Decimal `json:"total_expense"`
	NetBalance          decimal.Decimal `json:"net_balance"`
	TotalIncomeDisplay  string          `json:"total_income_display"`
	TotalExpenseDisplay string          `json:"total_expense_display"`
	NetBalanceDisplay   string          `json:"net_balance_display"`
}

// MonthlyReportResponse represents the monthly dashboard report. Display
// strings are masked when hide-values mode is requested; the numeric
// aggregates themselves are never altered by masking.
type MonthlyReportResponse struct {
	Year              int                        `json:"year"`
	Month             int                        `json:"month"`
	Buckets           []*PeriodBucketResponse    `json:"buckets"`
	IncomeByCategory  []*CategorySummaryResponse `json:"income_by_category"`
	ExpenseByCategory []*CategorySummaryResponse `json:"expense_by_category"`
	Totals            TotalsResponse             `json:"totals"`
	SkippedEntries    int                        `json:"skipped_entries"`
}

// MonthlyReportFromUseCase converts an assembled report, rendering display
// strings masked or formatted per the hidden flag.
func MonthlyReportFromUseCase(r *usecase.MonthlyReport, hidden bool) *MonthlyReportResponse {
	buckets := make([]*PeriodBucketResponse, len(r.Buckets))
	for i, b := range r.Buckets {
		buckets[i] = &PeriodBucketResponse{
			Label:             b.Label,
			Income:            b.Income,
			Expense:           b.Expense,
			PeriodBalance:     b.PeriodBalance,
			CumulativeBalance: b.CumulativeBalance,
			IncomeDisplay:     report.MaskIfHidden(b.Income, hidden),
			ExpenseDisplay:    report.MaskIfHidden(b.Expense, hidden),
			BalanceDisplay:    report.MaskIfHidden(b.PeriodBalance, hidden),
		}
	}

	return &MonthlyReportResponse{
		Year:              r.Year,
		Month:             r.Month,
		Buckets:           buckets,
		IncomeByCategory:  summariesFromReport(r.IncomeByCategory, hidden),
		ExpenseByCategory: summariesFromReport(r.ExpenseByCategory, hidden),
		Totals: TotalsResponse{
			TotalIncome:         r.Totals.TotalIncome,
			TotalExpense:        r.Totals.TotalExpense,
			NetBalance:          r.Totals.NetBalance,
			TotalIncomeDisplay:  report.MaskIfHidden(r.Totals.TotalIncome, hidden),
			TotalExpenseDisplay: report.MaskIfHidden(r.Totals.TotalExpense, hidden),
			NetBalanceDisplay:   report.MaskIfHidden(r.Totals.NetBalance, hidden),
		},
		SkippedEntries: r.SkippedEntries,
	}
}

func summariesFromReport(summaries []report.CategorySummary, hidden bool) []*CategorySummaryResponse {
	result := make([]*CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		result[i] = &CategorySummaryResponse{
			CategoryName: s.CategoryName,
			Color:        s.Color,
			Total:        s.Total,
			TotalDisplay: report.MaskIfHidden(s.Total, hidden),
		}
	}
	return result
}

// AccountOverviewResponse represents the account-type totals view.
type AccountOverviewResponse struct {
	TotalChecking           decimal.Decimal `json:"total_checking"`
	TotalInvestments        decimal.Decimal `json:"total_investments"`
	TotalCreditCards        decimal.Decimal `json:"total_credit_cards"`
	GrandTotal              decimal.Decimal `json:"grand_total"`
	TotalCheckingDisplay    string          `json:"total_checking_display"`
	TotalInvestmentsDisplay string          `json:"total_investments_display"`
	TotalCreditCardsDisplay string          `json:"total_credit_cards_display"`
	GrandTotalDisplay       string          `json:"grand_total_display"`
}

// AccountOverviewFromUseCase converts an account overview.
func AccountOverviewFromUseCase(o *usecase.AccountOverview, hidden bool) *AccountOverviewResponse {
	t := o.Totals
	return &AccountOverviewResponse{
		TotalChecking:           t.TotalChecking,
		TotalInvestments:        t.TotalInvestments,
		TotalCreditCards:        t.TotalCreditCards,
		GrandTotal:              t.GrandTotal,
		TotalCheckingDisplay:    report.MaskIfHidden(t.TotalChecking, hidden),
		TotalInvestmentsDisplay: report.MaskIfHidden(t.TotalInvestments, hidden),
		TotalCreditCardsDisplay: report.MaskIfHidden(t.TotalCreditCards, hidden),
		GrandTotalDisplay:       report.MaskIfHidden(t.GrandTotal, hidden),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
