package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/usecase"
	"github.com/vixus/vixus/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateAccountInput
		expectError error
	}{
		{
			name: "checking account",
			input: usecase.CreateAccountInput{
				Name:           "Main checking",
				Type:           domain.AccountTypeChecking,
				InitialBalance: decimal.NewFromInt(500),
			},
		},
		{
			name: "credit card account",
			input: usecase.CreateAccountInput{
				Name: "Visa",
				Type: domain.AccountTypeCreditCard,
			},
		},
		{
			name: "invalid type",
			input: usecase.CreateAccountInput{
				Name: "Piggy bank",
				Type: "savings",
			},
			expectError: domain.ErrInvalidAccountType,
		},
		{
			name: "empty name",
			input: usecase.CreateAccountInput{
				Name: "",
				Type: domain.AccountTypeChecking,
			},
			expectError: domain.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			txManager := mocks.NewMockTransactionManager()
			retrier := mocks.NewMockRetrier()
			idGen := mocks.NewMockIDGenerator()

			uc := usecase.NewAccountUseCase(txManager, repo, retrier, idGen, nil)
			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account == nil {
				t.Fatal("expected account, got nil")
			}
			if !account.Balance.Equal(tt.input.InitialBalance) {
				t.Errorf("expected balance %s, got %s", tt.input.InitialBalance, account.Balance)
			}
		})
	}
}

func TestAccountUseCase_AdjustBalance(t *testing.T) {
	tests := []struct {
		name        string
		account     *domain.Account
		input       usecase.AdjustBalanceInput
		expectError error
		wantBalance decimal.Decimal
	}{
		{
			name: "deposit",
			account: &domain.Account{
				ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
				Balance: decimal.NewFromInt(100),
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentDeposit,
				Amount:    decimal.NewFromInt(50),
			},
			wantBalance: decimal.NewFromInt(150),
		},
		{
			name: "withdraw within balance",
			account: &domain.Account{
				ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
				Balance: decimal.NewFromInt(100),
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentWithdraw,
				Amount:    decimal.NewFromInt(40),
			},
			wantBalance: decimal.NewFromInt(60),
		},
		{
			name: "overdraft rejected on checking",
			account: &domain.Account{
				ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
				Balance: decimal.NewFromInt(100),
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentWithdraw,
				Amount:    decimal.NewFromInt(200),
			},
			expectError: domain.ErrInsufficientFunds,
		},
		{
			name: "credit card may go negative",
			account: &domain.Account{
				ID: "acc-1", Name: "Visa", Type: domain.AccountTypeCreditCard,
				Balance: decimal.NewFromInt(100),
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentWithdraw,
				Amount:    decimal.NewFromInt(400),
			},
			wantBalance: decimal.NewFromInt(-300),
		},
		{
			name: "zero amount rejected",
			account: &domain.Account{
				ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentDeposit,
				Amount:    decimal.Zero,
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "unknown direction rejected",
			account: &domain.Account{
				ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: "transfer",
				Amount:    decimal.NewFromInt(10),
			},
			expectError: domain.ErrInvalidAmount,
		},
		{
			name: "account not found",
			account: &domain.Account{
				ID: "other", Name: "Checking", Type: domain.AccountTypeChecking,
			},
			input: usecase.AdjustBalanceInput{
				AccountID: "acc-1",
				Direction: usecase.AdjustmentDeposit,
				Amount:    decimal.NewFromInt(10),
			},
			expectError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			txManager := mocks.NewMockTransactionManager()
			retrier := mocks.NewMockRetrier()
			idGen := mocks.NewMockIDGenerator()
			repo.Create(context.Background(), tt.account)

			uc := usecase.NewAccountUseCase(txManager, repo, retrier, idGen, nil)
			account, err := uc.AdjustBalance(context.Background(), tt.input)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !account.Balance.Equal(tt.wantBalance) {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, account.Balance)
			}
		})
	}
}

func TestAccountUseCase_AdjustBalance_RetriesTransientErrors(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	txManager := mocks.NewMockTransactionManager()
	idGen := mocks.NewMockIDGenerator()
	repo.Create(context.Background(), &domain.Account{
		ID: "acc-1", Name: "Checking", Type: domain.AccountTypeChecking,
		Balance: decimal.NewFromInt(100),
	})

	attempts := 0
	retrier := mocks.NewMockRetrier()
	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		for {
			attempts++
			if err := operation(); err == nil || attempts >= 3 {
				return err
			}
		}
	}

	transient := errors.New("deadlock detected")
	calls := 0
	repo.GetByIDForUpdateFunc = func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
		calls++
		if calls < 3 {
			return nil, transient
		}
		return repo.GetByID(ctx, id)
	}

	uc := usecase.NewAccountUseCase(txManager, repo, retrier, idGen, nil)
	account, err := uc.AdjustBalance(context.Background(), usecase.AdjustBalanceInput{
		AccountID: "acc-1",
		Direction: usecase.AdjustmentDeposit,
		Amount:    decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if !account.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("expected balance 125, got %s", account.Balance)
	}
}
