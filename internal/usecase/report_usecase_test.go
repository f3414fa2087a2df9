package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/usecase"
	"github.com/vixus/vixus/internal/usecase/mockgen"
)

func TestReportUseCase_MonthlyReport_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)

	entryRepo := mockgen.NewMockEntryRepository(ctrl)
	categoryRepo := mockgen.NewMockCategoryRepository(ctrl)
	accountRepo := mockgen.NewMockAccountRepository(ctrl)
	cache := mockgen.NewMockCache(ctrl)

	entries := []*domain.Entry{
		{
			ID:             "e1",
			ReferenceDate:  time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
			Classification: domain.ClassificationIncome,
			PaidAmount:     decimal.NewFromInt(1000),
			CategoryID:     "cat-salary",
		},
		{
			ID:             "e2",
			ReferenceDate:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			Classification: domain.ClassificationExpense,
			PaidAmount:     decimal.NewFromInt(300),
		},
	}
	categories := []*domain.Category{
		{ID: "cat-salary", Name: "Salary", Type: domain.ClassificationIncome, Color: "#22C55E"},
	}

	cache.EXPECT().Get(gomock.Any(), "report:monthly:2024-03").Return(nil, nil)
	entryRepo.EXPECT().ListByMonth(gomock.Any(), 2024, time.March).Return(entries, nil)
	categoryRepo.EXPECT().ListAll(gomock.Any()).Return(categories, nil)
	cache.EXPECT().Set(gomock.Any(), "report:monthly:2024-03", gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewReportUseCase(entryRepo, categoryRepo, accountRepo, cache, nil, usecase.ReportOptions{})

	report, err := uc.MonthlyReport(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Year != 2024 || report.Month != 3 {
		t.Errorf("expected 2024-03, got %d-%d", report.Year, report.Month)
	}
	if len(report.Buckets) == 0 || len(report.Buckets) > 10 {
		t.Errorf("expected 1..10 buckets, got %d", len(report.Buckets))
	}
	if !report.Totals.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected income 1000, got %s", report.Totals.TotalIncome)
	}
	if !report.Totals.NetBalance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected net 700, got %s", report.Totals.NetBalance)
	}
	if len(report.IncomeByCategory) != 1 || report.IncomeByCategory[0].CategoryName != "Salary" {
		t.Errorf("expected income summary for Salary, got %v", report.IncomeByCategory)
	}
	if len(report.ExpenseByCategory) != 1 || report.ExpenseByCategory[0].CategoryName != "Uncategorized" {
		t.Errorf("expected expense summary Uncategorized, got %v", report.ExpenseByCategory)
	}
}

func TestReportUseCase_MonthlyReport_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	entryRepo := mockgen.NewMockEntryRepository(ctrl)
	categoryRepo := mockgen.NewMockCategoryRepository(ctrl)
	accountRepo := mockgen.NewMockAccountRepository(ctrl)
	cache := mockgen.NewMockCache(ctrl)

	cached := usecase.MonthlyReport{Year: 2024, Month: 3, SkippedEntries: 2}
	data, err := json.Marshal(cached)
	if err != nil {
		t.Fatal(err)
	}

	// Repositories must not be touched on a hit.
	cache.EXPECT().Get(gomock.Any(), "report:monthly:2024-03").Return(data, nil)

	uc := usecase.NewReportUseCase(entryRepo, categoryRepo, accountRepo, cache, nil, usecase.ReportOptions{})

	report, err := uc.MonthlyReport(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Year != 2024 || report.Month != 3 || report.SkippedEntries != 2 {
		t.Errorf("expected cached report back, got %+v", report)
	}
}

func TestReportUseCase_MonthlyReport_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)

	uc := usecase.NewReportUseCase(
		mockgen.NewMockEntryRepository(ctrl),
		mockgen.NewMockCategoryRepository(ctrl),
		mockgen.NewMockAccountRepository(ctrl),
		nil, nil, usecase.ReportOptions{},
	)

	if _, err := uc.MonthlyReport(context.Background(), 2024, 0); !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestReportUseCase_MonthlyReport_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)

	entryRepo := mockgen.NewMockEntryRepository(ctrl)
	categoryRepo := mockgen.NewMockCategoryRepository(ctrl)
	accountRepo := mockgen.NewMockAccountRepository(ctrl)

	repoErr := errors.New("connection reset")
	entryRepo.EXPECT().ListByMonth(gomock.Any(), 2024, time.March).Return(nil, repoErr)
	categoryRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil).AnyTimes()

	uc := usecase.NewReportUseCase(entryRepo, categoryRepo, accountRepo, nil, nil, usecase.ReportOptions{})

	if _, err := uc.MonthlyReport(context.Background(), 2024, time.March); !errors.Is(err, repoErr) {
		t.Errorf("expected repo error, got %v", err)
	}
}

func TestReportUseCase_InvalidateMonth(t *testing.T) {
	ctrl := gomock.NewController(t)

	cache := mockgen.NewMockCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), "report:monthly:2024-07").Return(nil)

	uc := usecase.NewReportUseCase(
		mockgen.NewMockEntryRepository(ctrl),
		mockgen.NewMockCategoryRepository(ctrl),
		mockgen.NewMockAccountRepository(ctrl),
		cache, nil, usecase.ReportOptions{},
	)

	uc.InvalidateMonth(context.Background(), 2024, time.July)
}

func TestReportUseCase_AccountOverview(t *testing.T) {
	ctrl := gomock.NewController(t)

	accountRepo := mockgen.NewMockAccountRepository(ctrl)
	accountRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*domain.Account{
		{ID: "a1", Type: domain.AccountTypeChecking, Balance: decimal.NewFromInt(500)},
		{ID: "a2", Type: domain.AccountTypeInvestment, Balance: decimal.NewFromInt(2000)},
		{ID: "a3", Type: domain.AccountTypeCreditCard, Balance: decimal.NewFromInt(-300)},
	}, nil)

	uc := usecase.NewReportUseCase(
		mockgen.NewMockEntryRepository(ctrl),
		mockgen.NewMockCategoryRepository(ctrl),
		accountRepo,
		nil, nil, usecase.ReportOptions{},
	)

	overview, err := uc.AccountOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !overview.Totals.GrandTotal.Equal(decimal.NewFromInt(2200)) {
		t.Errorf("expected grand total 2200, got %s", overview.Totals.GrandTotal)
	}
	if !overview.Totals.TotalCreditCards.Equal(decimal.NewFromInt(-300)) {
		t.Errorf("expected credit cards -300, got %s", overview.Totals.TotalCreditCards)
	}
}
