package report

import (
	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
)

// Totals are top-level ledger aggregates for a caller-selected window.
type Totals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetBalance   decimal.Decimal `json:"net_balance"`
}

// AccountTotals are balance aggregates broken down by account type.
// These are independent from ledger totals: account balances move only
// through explicit adjustments and are never reconciled against entries.
type AccountTotals struct {
	TotalChecking    decimal.Decimal `json:"total_checking"`
	TotalInvestments decimal.Decimal `json:"total_investments"`
	TotalCreditCards decimal.Decimal `json:"total_credit_cards"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}

// ComputeTotals sums paid amounts per classification over the given entries.
func ComputeTotals(entries []*domain.Entry) Totals {
	t := Totals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, e := range entries {
		if e == nil || e.Malformed() {
			continue
		}

		switch e.Classification {
		case domain.ClassificationIncome:
			t.TotalIncome = t.TotalIncome.Add(e.PaidAmount)
		case domain.ClassificationExpense:
			t.TotalExpense = t.TotalExpense.Add(e.PaidAmount)
		}
	}

	t.NetBalance = t.TotalIncome.Sub(t.TotalExpense)

	return t
}

// ComputeAccountTotals sums balances by account type. GrandTotal is exactly
// the sum of the three type totals.
func ComputeAccountTotals(accounts []*domain.Account) AccountTotals {
	t := AccountTotals{
		TotalChecking:    decimal.Zero,
		TotalInvestments: decimal.Zero,
		TotalCreditCards: decimal.Zero,
	}

	for _, a := range accounts {
		if a == nil {
			continue
		}

		switch a.Type {
		case domain.AccountTypeChecking:
			t.TotalChecking = t.TotalChecking.Add(a.Balance)
		case domain.AccountTypeInvestment:
			t.TotalInvestments = t.TotalInvestments.Add(a.Balance)
		case domain.AccountTypeCreditCard:
			t.TotalCreditCards = t.TotalCreditCards.Add(a.Balance)
		}
	}

	t.GrandTotal = t.TotalChecking.Add(t.TotalInvestments).Add(t.TotalCreditCards)

	return t
}
