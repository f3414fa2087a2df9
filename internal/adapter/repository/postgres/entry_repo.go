package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vixus/vixus/internal/domain"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

const entryColumns = `id, reference_date, classification, paid_amount, original_amount,
	late_interest, category_id, supplier_id, payment_method_id, description,
	due_date, payment_date, payment_status, entry_type, created_at, updated_at`

// Create inserts a new entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		entry.ID,
		timeToPgDate(entry.ReferenceDate),
		string(entry.Classification),
		decimalToNumeric(entry.PaidAmount),
		decimalToNumeric(entry.OriginalAmount),
		decimalToNumeric(entry.LateInterest),
		entry.CategoryID,
		entry.SupplierID,
		entry.PaymentMethodID,
		entry.Description,
		timeToPgDate(entry.DueDate),
		paymentDateToPgDate(entry.PaymentDate),
		string(entry.PaymentStatus),
		string(entry.EntryType),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = $1`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByMonth lists entries whose reference date falls in the given month.
func (r *EntryRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]*domain.Entry, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+` FROM entries
		WHERE reference_date >= $1 AND reference_date < $2
		ORDER BY reference_date, created_at`,
		timeToPgDate(start), timeToPgDate(end),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// List lists entries with pagination, newest first.
func (r *EntryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+` FROM entries
		ORDER BY reference_date DESC, created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Update persists settlement changes on an entry.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE entries
		SET paid_amount = $2, original_amount = $3, late_interest = $4,
			payment_date = $5, payment_status = $6, updated_at = $7
		WHERE id = $1`,
		entry.ID,
		decimalToNumeric(entry.PaidAmount),
		decimalToNumeric(entry.OriginalAmount),
		decimalToNumeric(entry.LateInterest),
		paymentDateToPgDate(entry.PaymentDate),
		string(entry.PaymentStatus),
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func scanEntries(rows pgx.Rows) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var (
		entry          domain.Entry
		referenceDate  pgtype.Date
		classification string
		paidAmount     pgtype.Numeric
		originalAmount pgtype.Numeric
		lateInterest   pgtype.Numeric
		categoryID     pgtype.Text
		dueDate        pgtype.Date
		paymentDate    pgtype.Date
		status         string
		entryType      string
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&entry.ID,
		&referenceDate,
		&classification,
		&paidAmount,
		&originalAmount,
		&lateInterest,
		&categoryID,
		&entry.SupplierID,
		&entry.PaymentMethodID,
		&entry.Description,
		&dueDate,
		&paymentDate,
		&status,
		&entryType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ReferenceDate = pgDateToTime(referenceDate)
	entry.Classification = domain.Classification(classification)
	entry.PaidAmount = numericToDecimal(paidAmount)
	entry.OriginalAmount = numericToDecimal(originalAmount)
	entry.LateInterest = numericToDecimal(lateInterest)
	if categoryID.Valid {
		entry.CategoryID = categoryID.String
	}
	entry.DueDate = pgDateToTime(dueDate)
	if paymentDate.Valid {
		t := paymentDate.Time
		entry.PaymentDate = &t
	}
	entry.PaymentStatus = domain.PaymentStatus(status)
	entry.EntryType = domain.EntryType(entryType)
	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

func paymentDateToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
