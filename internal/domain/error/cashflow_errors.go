// Package error defines domain-specific errors for the Coinbag application.
package error

import "errors"

// Cash flow domain errors.
var (
	// ErrCashFlowNotFound is returned when a cash flow record is not found.
	ErrCashFlowNotFound = errors.New("cash flow not found")

	// ErrCashFlowNameRequired is returned when a cash flow name is empty.
	ErrCashFlowNameRequired = errors.New("cash flow name is required")

	// ErrInvalidCashFlowType is returned when the type is not income or expense.
	ErrInvalidCashFlowType = errors.New("cash flow type must be 'income' or 'expense'")

	// ErrNegativeAmount is returned when an amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidFrequency is returned when a frequency is outside the closed set.
	ErrInvalidFrequency = errors.New("frequency must be: weekly, fortnightly, monthly, quarterly, or yearly")

	// ErrCategoryOnIncome is returned when an income record carries a category.
	ErrCategoryOnIncome = errors.New("income records cannot have a category")
)

// CashFlowErrorCode defines error codes for cash flow errors.
// Format: CSH-XXYYYY where XX is category and YYYY is specific error.
type CashFlowErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCashFlowNameRequired CashFlowErrorCode = "CSH-010001"
	ErrCodeInvalidCashFlowType  CashFlowErrorCode = "CSH-010002"
	ErrCodeNegativeAmount       CashFlowErrorCode = "CSH-010003"
	ErrCodeInvalidFrequency     CashFlowErrorCode = "CSH-010004"
	ErrCodeCategoryOnIncome     CashFlowErrorCode = "CSH-010005"

	// Lookup errors (02XXXX)
	ErrCodeCashFlowNotFound CashFlowErrorCode = "CSH-020001"
)

// CashFlowError represents a cash flow error with code and message.
type CashFlowError struct {
	Code    CashFlowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashFlowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashFlowError) Unwrap() error {
	return e.Err
}

// NewCashFlowError creates a new CashFlowError with the given code and message.
func NewCashFlowError(code CashFlowErrorCode, message string, err error) *CashFlowError {
	return &CashFlowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
