package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/usecase"
)

// CreateEntryRequest represents a request to create a ledger entry.
type CreateEntryRequest struct {
	ReferenceDate   time.Time       `json:"reference_date"`
	Classification  string          `json:"classification"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"category_id,omitempty"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
	Description     string          `json:"description,omitempty"`
	DueDate         time.Time       `json:"due_date,omitempty"`
	EntryType       string          `json:"entry_type,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() usecase.CreateEntryInput {
	return usecase.CreateEntryInput{
		ReferenceDate:   r.ReferenceDate,
		Classification:  domain.Classification(r.Classification),
		Amount:          r.Amount,
		CategoryID:      r.CategoryID,
		SupplierID:      r.SupplierID,
		PaymentMethodID: r.PaymentMethodID,
		Description:     r.Description,
		DueDate:         r.DueDate,
		EntryType:       domain.EntryType(r.EntryType),
	}
}

// SettleEntryRequest represents a request to settle an entry.
type SettleEntryRequest struct {
	PaymentDate  time.Time       `json:"payment_date,omitempty"`
	LateInterest decimal.Decimal `json:"late_interest,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SettleEntryRequest) ToUseCaseInput(entryID string) usecase.SettleEntryInput {
	return usecase.SettleEntryInput{
		EntryID:      entryID,
		PaymentDate:  r.PaymentDate,
		LateInterest: r.LateInterest,
	}
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Color    string `json:"color,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:     r.Name,
		Type:     domain.Classification(r.Type),
		Color:    r.Color,
		ParentID: r.ParentID,
	}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:           r.Name,
		Type:           domain.AccountType(r.Type),
		InitialBalance: r.InitialBalance,
	}
}

// AdjustBalanceRequest represents a request to adjust an account balance.
type AdjustBalanceRequest struct {
	Direction string          `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *AdjustBalanceRequest) ToUseCaseInput(accountID string) usecase.AdjustBalanceInput {
	return usecase.AdjustBalanceInput{
		AccountID: accountID,
		Direction: usecase.AdjustmentDirection(r.Direction),
		Amount:    r.Amount,
	}
}
