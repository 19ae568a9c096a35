// Package error defines domain-specific errors for the Coinbag application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameRequired is returned when an account name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountNameTooLong is returned when an account name exceeds the limit.
	ErrAccountNameTooLong = errors.New("account name is too long")

	// ErrAccountNameExists is returned when an account name is already in use.
	ErrAccountNameExists = errors.New("an account with this name already exists")

	// ErrAccountInUse is returned when deleting an account that cash flows or
	// the pay cycle still reference.
	ErrAccountInUse = errors.New("account is referenced by other records")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameRequired AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong  AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameExists   AccountErrorCode = "ACC-010003"

	// Lookup errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"

	// Deletion errors (03XXXX)
	ErrCodeAccountInUse AccountErrorCode = "ACC-030001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
