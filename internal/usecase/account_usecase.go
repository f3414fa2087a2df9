package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/infrastructure/metrics"
)

// AdjustmentDirection is the direction of a balance adjustment.
type AdjustmentDirection string

const (
	AdjustmentDeposit  AdjustmentDirection = "deposit"
	AdjustmentWithdraw AdjustmentDirection = "withdraw"
)

// AccountUseCase handles account business logic. Account balances move
// only through explicit adjustments here; posting ledger entries never
// touches them.
type AccountUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	retrier     Retrier
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase. m may be nil.
func NewAccountUseCase(txManager TransactionManager, accountRepo AccountRepository, retrier Retrier, idGen IDGenerator, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		retrier:     retrier,
		idGen:       idGen,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name           string
	Type           domain.AccountType
	InitialBalance decimal.Decimal
}

// CreateAccount creates a new account with an optional opening balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrInvalidAccountType
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Type:      input.Type,
		Balance:   input.InitialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// AdjustBalanceInput represents input for a balance adjustment.
type AdjustBalanceInput struct {
	AccountID string
	Direction AdjustmentDirection
	Amount    decimal.Decimal
}

// AdjustBalance deposits into or withdraws from an account inside a
// row-locked transaction, retried on transient storage conflicts.
func (uc *AccountUseCase) AdjustBalance(ctx context.Context, input AdjustBalanceInput) (*domain.Account, error) {
	if input.Amount.IsNegative() || input.Amount.IsZero() {
		return nil, domain.ErrInvalidAmount
	}

	if input.Direction != AdjustmentDeposit && input.Direction != AdjustmentWithdraw {
		return nil, domain.ErrInvalidAmount
	}

	var account *domain.Account

	operation := func() error {
		var err error
		account, err = uc.adjustOnce(ctx, input)
		return err
	}

	if uc.retrier != nil {
		if err := uc.retrier.Retry(ctx, operation); err != nil {
			return nil, err
		}
	} else if err := operation(); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceAdjustments.WithLabelValues(string(input.Direction)).Inc()
	}

	return account, nil
}

func (uc *AccountUseCase) adjustOnce(ctx context.Context, input AdjustBalanceInput) (*domain.Account, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	var newBalance decimal.Decimal
	switch input.Direction {
	case AdjustmentDeposit:
		newBalance = account.ApplyDeposit(input.Amount)
	case AdjustmentWithdraw:
		if err := account.ValidateWithdraw(input.Amount); err != nil {
			return nil, err
		}
		newBalance = account.ApplyWithdraw(input.Amount)
	}

	now := time.Now().UTC()
	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	account.UpdatedAt = now

	return account, nil
}
