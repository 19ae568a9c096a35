// Package error defines domain-specific errors for the Coinbag application.
package error

import "errors"

// Planner domain errors.
var (
	// ErrUnsupportedTargetFrequency is returned when converting a monthly
	// amount to a cadence other than weekly, fortnightly, or monthly.
	// Quarterly and yearly are normalize-only directions.
	ErrUnsupportedTargetFrequency = errors.New("target frequency must be: weekly, fortnightly, or monthly")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Conversion errors (01XXXX)
	ErrCodeUnsupportedTargetFrequency PlannerErrorCode = "PLN-010001"

	// Internal errors (99XXXX)
	ErrCodePlannerInternalError PlannerErrorCode = "PLN-990001"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
