package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies what kind of holding an account represents.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCreditCard AccountType = "credit_card"
)

// Valid reports whether the account type is one of the known values.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeInvestment, AccountTypeCreditCard:
		return true
	}
	return false
}

// Account represents a cash or credit holding. Accounts are maintained
// independently from the entry ledger: balances change only through
// explicit adjustments, never as a side effect of posting entries.
type Account struct {
	ID        string
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateWithdraw checks whether the account balance may be reduced by
// amount. Only credit card accounts may go below zero.
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	newBalance := a.Balance.Sub(amount)
	if a.Type != AccountTypeCreditCard && newBalance.IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDeposit returns the balance after a deposit.
func (a *Account) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyWithdraw returns the balance after a withdrawal.
func (a *Account) ApplyWithdraw(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}
