// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidSum         = errors.New("invalid sum")
	ErrInvalidYearFormat  = errors.New("year must contain only digits")
	ErrInvalidMonthFormat = errors.New("month must contain only digits")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrInvalidYearRange   = errors.New("year must be between 2000 and 2100")
	ErrMissingID          = errors.New("id is required")
	// Add more specific errors as needed
)

// IsError reports whether err matches target, unwrapping wrapped errors.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
