// Package error defines domain-specific errors for the Coinbag application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when a category name exceeds the limit.
	ErrCategoryNameTooLong = errors.New("category name is too long")

	// ErrCategoryNameExists is returned when a category name is already in use.
	ErrCategoryNameExists = errors.New("a category with this name already exists")

	// ErrInvalidColorFormat is returned when a color is not a valid hex value.
	ErrInvalidColorFormat = errors.New("color must be a valid hex format")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong  CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidColorFormat   CategoryErrorCode = "CAT-010004"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
