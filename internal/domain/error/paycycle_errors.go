// Package error defines domain-specific errors for the Coinbag application.
package error

import "errors"

// Pay cycle domain errors.
var (
	// ErrPayCycleNotFound is returned when a user has no pay cycle configured.
	ErrPayCycleNotFound = errors.New("pay cycle not configured")

	// ErrInvalidPayCycleFrequency is returned when the frequency is not a
	// supported pay cadence.
	ErrInvalidPayCycleFrequency = errors.New("pay cycle frequency must be: weekly, fortnightly, or monthly")

	// ErrMissingPrimaryAccount is returned when no primary income account is set.
	ErrMissingPrimaryAccount = errors.New("primary income account is required")

	// ErrMissingNextPayDate is returned when the next pay date is not set.
	ErrMissingNextPayDate = errors.New("next pay date is required")
)

// PayCycleErrorCode defines error codes for pay cycle errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PayCycleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPayCycleFrequency PayCycleErrorCode = "PAY-010001"
	ErrCodeMissingPrimaryAccount    PayCycleErrorCode = "PAY-010002"
	ErrCodeMissingNextPayDate       PayCycleErrorCode = "PAY-010003"

	// Lookup errors (02XXXX)
	ErrCodePayCycleNotFound PayCycleErrorCode = "PAY-020001"
)

// PayCycleError represents a pay cycle error with code and message.
type PayCycleError struct {
	Code    PayCycleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayCycleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayCycleError) Unwrap() error {
	return e.Err
}

// NewPayCycleError creates a new PayCycleError with the given code and message.
func NewPayCycleError(code PayCycleErrorCode, message string, err error) *PayCycleError {
	return &PayCycleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
