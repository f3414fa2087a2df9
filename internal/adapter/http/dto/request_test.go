package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/usecase"
)

func TestCreateEntryRequest_ToUseCaseInput(t *testing.T) {
	refDate := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	dueDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	req := &CreateEntryRequest{
		ReferenceDate:  refDate,
		Classification: "expense",
		Amount:         decimal.RequireFromString("120.50"),
		CategoryID:     "cat-1",
		Description:    "Groceries",
		DueDate:        dueDate,
		EntryType:      "actual",
	}

	got := req.ToUseCaseInput()

	if got.Classification != domain.ClassificationExpense {
		t.Fatalf("expected expense classification, got %s", got.Classification)
	}
	if !got.Amount.Equal(decimal.RequireFromString("120.50")) {
		t.Fatalf("unexpected amount: %s", got.Amount)
	}
	if !got.ReferenceDate.Equal(refDate) || !got.DueDate.Equal(dueDate) {
		t.Fatalf("unexpected dates: %+v", got)
	}
	if got.CategoryID != "cat-1" || got.Description != "Groceries" {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestSettleEntryRequest_ToUseCaseInput(t *testing.T) {
	paymentDate := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	req := &SettleEntryRequest{
		PaymentDate:  paymentDate,
		LateInterest: decimal.RequireFromString("15"),
	}

	got := req.ToUseCaseInput("entry-1")

	if got.EntryID != "entry-1" {
		t.Fatalf("expected entry ID to propagate, got %s", got.EntryID)
	}
	if !got.PaymentDate.Equal(paymentDate) || !got.LateInterest.Equal(decimal.RequireFromString("15")) {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestCreateCategoryRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateCategoryRequest{
		Name:     "Food",
		Type:     "expense",
		Color:    "#FF5733",
		ParentID: "parent-1",
	}

	got := req.ToUseCaseInput()
	want := usecase.CreateCategoryInput{
		Name:     "Food",
		Type:     domain.ClassificationExpense,
		Color:    "#FF5733",
		ParentID: "parent-1",
	}

	if got != want {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccountRequest{
		Name:           "Nubank",
		Type:           "checking",
		InitialBalance: decimal.RequireFromString("500"),
	}

	got := req.ToUseCaseInput()

	if got.Name != "Nubank" || got.Type != domain.AccountTypeChecking {
		t.Fatalf("unexpected input: %+v", got)
	}
	if !got.InitialBalance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("unexpected balance: %s", got.InitialBalance)
	}
}

func TestAdjustBalanceRequest_ToUseCaseInput(t *testing.T) {
	req := &AdjustBalanceRequest{
		Direction: "withdraw",
		Amount:    decimal.RequireFromString("25"),
	}

	got := req.ToUseCaseInput("acc-1")

	if got.AccountID != "acc-1" || got.Direction != usecase.AdjustmentWithdraw {
		t.Fatalf("unexpected input: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("25")) {
		t.Fatalf("unexpected amount: %s", got.Amount)
	}
}
