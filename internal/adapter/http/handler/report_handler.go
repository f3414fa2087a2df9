package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vixus/vixus/internal/adapter/http/dto"
	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	MonthlyReport(ctx context.Context, year int, month time.Month) (*usecase.MonthlyReport, error)
	AccountOverview(ctx context.Context) (*usecase.AccountOverview, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Monthly builds the monthly report for the given year and month.
// Defaults to the current month. The hidden query flag masks
// formatted currency values in the response.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := parseIntQuery(r, "year", now.Year())
	month := parseIntQuery(r, "month", int(now.Month()))
	hidden := parseBoolQuery(r, "hidden")

	if err := domain.ValidatePeriod(year, time.Month(month)); err != nil {
		writeError(w, http.StatusBadRequest, "invalid period", err.Error())
		return
	}

	rep, err := h.reportUC.MonthlyReport(r.Context(), year, time.Month(month))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build monthly report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MonthlyReportFromUseCase(rep, hidden))
}

// Accounts builds the account totals overview.
func (h *ReportHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	hidden := parseBoolQuery(r, "hidden")

	overview, err := h.reportUC.AccountOverview(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build account overview", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountOverviewFromUseCase(overview, hidden))
}
