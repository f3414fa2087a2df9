package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification marks a ledger entry as money in or money out.
type Classification string

const (
	ClassificationIncome  Classification = "income"
	ClassificationExpense Classification = "expense"
)

// Valid reports whether the classification is one of the known values.
func (c Classification) Valid() bool {
	return c == ClassificationIncome || c == ClassificationExpense
}

// PaymentStatus tracks settlement state of an entry.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// EntryType distinguishes projected entries from actual movements.
type EntryType string

const (
	EntryTypeProjected EntryType = "projected"
	EntryTypeActual    EntryType = "actual"
)

// Entry represents a single ledger entry (lançamento): one financial movement.
type Entry struct {
	ID              string
	ReferenceDate   time.Time
	Classification  Classification
	PaidAmount      decimal.Decimal
	OriginalAmount  decimal.Decimal
	LateInterest    decimal.Decimal
	CategoryID      string
	SupplierID      string
	PaymentMethodID string
	Description     string
	DueDate         time.Time
	PaymentDate     *time.Time
	PaymentStatus   PaymentStatus
	EntryType       EntryType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveStatus resolves the settlement state as of now. A pending entry
// whose due date has passed reads as overdue without a stored state change.
func (e *Entry) EffectiveStatus(now time.Time) PaymentStatus {
	if e.PaymentStatus == PaymentStatusPending && !e.DueDate.IsZero() && e.DueDate.Before(now) {
		return PaymentStatusOverdue
	}
	return e.PaymentStatus
}

// Settle marks the entry as paid. Late interest, when present, is added on
// top of the original amount to form the settled amount.
func (e *Entry) Settle(paymentDate time.Time, lateInterest decimal.Decimal) {
	if e.OriginalAmount.IsZero() {
		e.OriginalAmount = e.PaidAmount
	}
	e.LateInterest = lateInterest
	e.PaidAmount = e.OriginalAmount.Add(lateInterest)
	e.PaymentDate = &paymentDate
	e.PaymentStatus = PaymentStatusPaid
}

// Malformed reports whether the entry must be excluded from aggregation:
// a missing reference date or a negative paid amount. Such entries are
// skipped, never a reason to abort a report.
func (e *Entry) Malformed() bool {
	return e.ReferenceDate.IsZero() || e.PaidAmount.IsNegative()
}

// InMonth reports whether the entry's reference date falls in the given
// calendar month.
func (e *Entry) InMonth(year int, month time.Month) bool {
	return e.ReferenceDate.Year() == year && e.ReferenceDate.Month() == month
}
