package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every failure of the settlement and fiscal core wraps
// exactly one of them, so callers branch with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrTransaction means storage failed after validation passed. Nothing
	// was applied and the whole settlement is safe to retry.
	ErrTransaction = errors.New("transaction error")
)

var (
	ErrTenantNotFound  = fmt.Errorf("tenant %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)

// IsRetryable reports whether the failed operation may be resubmitted unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransaction)
}
