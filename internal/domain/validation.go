package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName          = errors.New("invalid name")
	ErrInvalidColor         = errors.New("invalid color")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
	ErrInvalidDescription   = errors.New("description too long")
	ErrMissingReferenceDate = errors.New("reference date is required")
)

// Validation constants
const (
	MaxNameLength        = 255
	MinNameLength        = 1
	MaxDescriptionLength = 500
	MaxEntryAmount       = "1000000000" // 1 billion
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateName validates an account or category name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateColor validates an optional hex display color.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}

	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("%w: %s is not a #RRGGBB value", ErrInvalidColor, color)
	}

	return nil
}

// ValidateAmount validates a monetary amount for an entry or adjustment.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxEntryAmount)
	}

	return nil
}

// ValidateEntry validates an entry before it is persisted.
func ValidateEntry(e *Entry) error {
	if !e.Classification.Valid() {
		return ErrInvalidClassification
	}

	if e.ReferenceDate.IsZero() {
		return ErrMissingReferenceDate
	}

	if err := ValidateAmount(e.PaidAmount); err != nil {
		return err
	}

	if len(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: maximum %d characters", ErrInvalidDescription, MaxDescriptionLength)
	}

	return nil
}

// ValidatePeriod validates a year+month report window.
func ValidatePeriod(year int, month time.Month) error {
	if year < 1970 || year > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}

	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidPeriod, month)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
