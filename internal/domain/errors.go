package domain

import "errors"

var (
	// Entry errors
	ErrEntryNotFound         = errors.New("entry not found")
	ErrInvalidClassification = errors.New("classification must be income or expense")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrEntryAlreadyPaid      = errors.New("entry is already paid")

	// Category errors
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryDepth        = errors.New("subcategories cannot have children")
	ErrCategoryTypeMismatch = errors.New("category type does not match parent type")

	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountType = errors.New("account type must be checking, investment or credit_card")
	ErrInsufficientFunds  = errors.New("account does not allow negative balance")

	// Report errors
	ErrInvalidPeriod = errors.New("invalid report period")
)
