package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder builds an error with an optional hint, reportable details and
// a classification mark. The zero builder is not usable; start from NewError,
// NewErrorf or WithError.
type ErrorBuilder struct {
	err     error
	hint    string
	details map[string]interface{}
}

// NewError starts a builder from a fresh error message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{err: errors.Newf(format, args...)}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint attaches a user-facing hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hint = hint
	return b
}

// WithHintf attaches a formatted user-facing hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details safe to surface to callers.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.details = details
	return b
}

// Mark finalizes the builder, classifying the error as target.
func (b *ErrorBuilder) Mark(target error) error {
	err := b.err
	if b.hint != "" {
		err = errors.WithHint(err, b.hint)
	}
	for k, v := range b.details {
		err = errors.WithDetailf(err, "%s=%v", k, v)
	}
	return errors.Mark(err, target)
}
