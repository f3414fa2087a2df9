package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/adapter/http/dto"
	"github.com/vixus/vixus/internal/report"
	"github.com/vixus/vixus/internal/usecase"
)

type reportServiceStub struct {
	monthlyFn  func(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error)
	overviewFn func(ctx context.Context) (*usecase.AccountOverview, error)
}

func (s *reportServiceStub) MonthlyReport(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error) {
	return s.monthlyFn(ctx, year, month)
}

func (s *reportServiceStub) AccountOverview(ctx context.Context) (*usecase.AccountOverview, error) {
	return s.overviewFn(ctx)
}

func sampleMonthlyReport() *usecase.MonthlyReport {
	return &usecase.MonthlyReport{
		Year:  2024,
		Month: 3,
		Buckets: []report.PeriodBucket{
			{
				Label:             "1-4/3",
				Income:            decimal.NewFromInt(1000),
				Expense:           decimal.NewFromInt(300),
				PeriodBalance:     decimal.NewFromInt(700),
				CumulativeBalance: decimal.NewFromInt(700),
			},
		},
		IncomeByCategory: []report.CategorySummary{
			{CategoryName: "Salary", Color: "#22C55E", Total: decimal.NewFromInt(1000)},
		},
		ExpenseByCategory: []report.CategorySummary{
			{CategoryName: "Uncategorized", Color: "#94A3B8", Total: decimal.NewFromInt(300)},
		},
		Totals: report.Totals{
			TotalIncome:  decimal.NewFromInt(1000),
			TotalExpense: decimal.NewFromInt(300),
			NetBalance:   decimal.NewFromInt(700),
		},
	}
}

func TestReportHandler_Monthly(t *testing.T) {
	var gotYear int
	var gotMonth time.Month
	handler := NewReportHandler(&reportServiceStub{
		monthlyFn: func(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error) {
			gotYear, gotMonth = year, month
			return sampleMonthlyReport(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?year=2024&month=3", nil)
	rec := httptest.NewRecorder()

	handler.Monthly(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotYear != 2024 || gotMonth != time.March {
		t.Fatalf("expected 2024-03, got %d-%d", gotYear, gotMonth)
	}

	var resp dto.MonthlyReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Totals.TotalIncomeDisplay != "R$1.000,00" {
		t.Fatalf("expected formatted income R$1.000,00, got %q", resp.Totals.TotalIncomeDisplay)
	}
	if len(resp.Buckets) != 1 || resp.Buckets[0].Label != "1-4/3" {
		t.Fatalf("expected bucket 1-4/3, got %+v", resp.Buckets)
	}
}

func TestReportHandler_Monthly_HiddenMasksDisplayOnly(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		monthlyFn: func(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error) {
			return sampleMonthlyReport(), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?year=2024&month=3&hidden=true", nil)
	rec := httptest.NewRecorder()

	handler.Monthly(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.MonthlyReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Totals.TotalIncomeDisplay != report.HiddenMask {
		t.Fatalf("expected masked display, got %q", resp.Totals.TotalIncomeDisplay)
	}
	if resp.Buckets[0].IncomeDisplay != report.HiddenMask {
		t.Fatalf("expected masked bucket display, got %q", resp.Buckets[0].IncomeDisplay)
	}
	// Numeric aggregates stay intact under masking.
	if !resp.Totals.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("numeric income must not be masked, got %s", resp.Totals.TotalIncome)
	}
}

func TestReportHandler_Monthly_InvalidPeriod(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		monthlyFn: func(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error) {
			t.Fatal("MonthlyReport should not be called for invalid period")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?year=2024&month=13", nil)
	rec := httptest.NewRecorder()

	handler.Monthly(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportHandler_Accounts(t *testing.T) {
	handler := NewReportHandler(&reportServiceStub{
		overviewFn: func(ctx context.Context) (*usecase.AccountOverview, error) {
			return &usecase.AccountOverview{
				Totals: report.AccountTotals{
					TotalChecking:    decimal.NewFromInt(500),
					TotalInvestments: decimal.NewFromInt(2000),
					TotalCreditCards: decimal.NewFromInt(-300),
					GrandTotal:       decimal.NewFromInt(2200),
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/reports/accounts", nil)
	rec := httptest.NewRecorder()

	handler.Accounts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.AccountOverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.GrandTotalDisplay != "R$2.200,00" {
		t.Fatalf("expected R$2.200,00, got %q", resp.GrandTotalDisplay)
	}
	if resp.TotalCreditCardsDisplay != "-R$300,00" {
		t.Fatalf("expected -R$300,00, got %q", resp.TotalCreditCardsDisplay)
	}
}
