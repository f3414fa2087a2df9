package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_ValidateWithdraw(t *testing.T) {
	tests := []struct {
		name        string
		accountType AccountType
		balance     decimal.Decimal
		amount      decimal.Decimal
		expectError bool
	}{
		{
			name:        "checking - withdraw within balance",
			accountType: AccountTypeChecking,
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(50),
			expectError: false,
		},
		{
			name:        "checking - withdraw exact balance",
			accountType: AccountTypeChecking,
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(100),
			expectError: false,
		},
		{
			name:        "checking - overdraft rejected",
			accountType: AccountTypeChecking,
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(150),
			expectError: true,
		},
		{
			name:        "investment - overdraft rejected",
			accountType: AccountTypeInvestment,
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(150),
			expectError: true,
		},
		{
			name:        "credit card - may go negative",
			accountType: AccountTypeCreditCard,
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(500),
			expectError: false,
		},
		{
			name:        "credit card - further into negative",
			accountType: AccountTypeCreditCard,
			balance:     decimal.NewFromInt(-200),
			amount:      decimal.NewFromInt(100),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{Type: tt.accountType, Balance: tt.balance}

			err := acc.ValidateWithdraw(tt.amount)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccount_ApplyAdjustments(t *testing.T) {
	acc := &Account{Type: AccountTypeChecking, Balance: decimal.NewFromInt(100)}

	if got := acc.ApplyDeposit(decimal.NewFromInt(40)); !got.Equal(decimal.NewFromInt(140)) {
		t.Errorf("expected 140, got %s", got)
	}
	if got := acc.ApplyWithdraw(decimal.NewFromInt(40)); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected 60, got %s", got)
	}

	// Applying returns the new balance without mutating the account.
	if !acc.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance must stay 100, got %s", acc.Balance)
	}
}

func TestAccountType_Valid(t *testing.T) {
	for _, valid := range []AccountType{AccountTypeChecking, AccountTypeInvestment, AccountTypeCreditCard} {
		if !valid.Valid() {
			t.Errorf("expected %s to be valid", valid)
		}
	}
	for _, invalid := range []AccountType{"", "savings", "CHECKING"} {
		if invalid.Valid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
