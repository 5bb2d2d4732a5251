package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used with Mark to classify failures. Callers match them
// with errors.Is (or the Is* helpers below) rather than comparing messages.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrInvalidDate      = errors.New("invalid_date")
	ErrInternal         = errors.New("internal_error")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsValidation reports whether err is marked as a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is marked as a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err is marked as an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsInvalidDate reports whether err is marked as an invalid-date error.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

// Hint extracts the user-facing hint attached to err, if any.
func Hint(err error) string {
	hints := errors.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}
