package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vixus/vixus/internal/domain"
	"github.com/vixus/vixus/internal/infrastructure/metrics"
)

// EntryUseCase handles ledger entry business logic.
type EntryUseCase struct {
	entryRepo    EntryRepository
	categoryRepo CategoryRepository
	idGen        IDGenerator
	reportCache  ReportInvalidator
	metrics      *metrics.Metrics
}

// ReportInvalidator drops cached reports affected by a write.
type ReportInvalidator interface {
	InvalidateMonth(ctx context.Context, year int, month time.Month)
}

// NewEntryUseCase creates a new EntryUseCase. reportCache and m may be nil.
func NewEntryUseCase(entryRepo EntryRepository, categoryRepo CategoryRepository, idGen IDGenerator, reportCache ReportInvalidator, m *metrics.Metrics) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:    entryRepo,
		categoryRepo: categoryRepo,
		idGen:        idGen,
		reportCache:  reportCache,
		metrics:      m,
	}
}

// CreateEntryInput represents input for creating an entry.
type CreateEntryInput struct {
	ReferenceDate   time.Time
	Classification  domain.Classification
	Amount          decimal.Decimal
	CategoryID      string
	SupplierID      string
	PaymentMethodID string
	Description     string
	DueDate         time.Time
	EntryType       domain.EntryType
}

// CreateEntry creates a new ledger entry. The category reference is
// optional; when present it must resolve and match the classification.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	now := time.Now().UTC()

	entryType := input.EntryType
	if entryType == "" {
		entryType = domain.EntryTypeActual
	}

	entry := &domain.Entry{
		ID:              uc.idGen.Generate(),
		ReferenceDate:   input.ReferenceDate,
		Classification:  input.Classification,
		PaidAmount:      input.Amount,
		OriginalAmount:  input.Amount,
		CategoryID:      input.CategoryID,
		SupplierID:      input.SupplierID,
		PaymentMethodID: input.PaymentMethodID,
		Description:     input.Description,
		DueDate:         input.DueDate,
		PaymentStatus:   domain.PaymentStatusPending,
		EntryType:       entryType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := domain.ValidateEntry(entry); err != nil {
		uc.countError("validation")
		return nil, err
	}

	if input.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, input.CategoryID)
		if err != nil {
			uc.countError("category_lookup")
			return nil, err
		}
		if category.Type != input.Classification {
			uc.countError("category_mismatch")
			return nil, domain.ErrCategoryTypeMismatch
		}
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesCreated.Inc()
	}
	uc.invalidate(ctx, entry)

	return entry, nil
}

// GetEntry retrieves an entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.Entry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntriesByMonth lists all entries whose reference date falls in the
// given month.
func (uc *EntryUseCase) ListEntriesByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Entry, error) {
	if err := domain.ValidatePeriod(year, month); err != nil {
		return nil, err
	}
	return uc.entryRepo.ListByMonth(ctx, year, month)
}

// SettleEntryInput represents input for settling an entry.
type SettleEntryInput struct {
	EntryID      string
	PaymentDate  time.Time
	LateInterest decimal.Decimal
}

// SettleEntry marks an entry as paid, adding late interest on top of the
// original amount when the payment came in after the due date.
func (uc *EntryUseCase) SettleEntry(ctx context.Context, input SettleEntryInput) (*domain.Entry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}

	if entry.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.ErrEntryAlreadyPaid
	}

	if input.LateInterest.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	entry.Settle(paymentDate, input.LateInterest)
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesSettled.Inc()
	}
	uc.invalidate(ctx, entry)

	return entry, nil
}

// DeleteEntry removes an entry.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.entryRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, entry)

	return nil
}

func (uc *EntryUseCase) countError(errType string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.EntryErrors.WithLabelValues(errType).Inc()
}

func (uc *EntryUseCase) invalidate(ctx context.Context, entry *domain.Entry) {
	if uc.reportCache == nil || entry.ReferenceDate.IsZero() {
		return
	}
	uc.reportCache.InvalidateMonth(ctx, entry.ReferenceDate.Year(), entry.ReferenceDate.Month())
}
