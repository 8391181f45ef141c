package domain

import (
	"errors"
	"fmt"
)

// Common validation errors shared across entities.
var (
	ErrValidation = errors.New("validation error")

	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyLogin       = errors.New("login cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidRole      = errors.New("invalid user role")
	ErrInvalidGender    = errors.New("invalid gender value")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")

	ErrEmptyCategoryID   = errors.New("category ID cannot be empty")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	ErrEmptyProductID    = errors.New("product ID cannot be empty")
	ErrEmptyProductName  = errors.New("product name cannot be empty")
	ErrInvalidPrice      = errors.New("price must be a positive decimal value")
	ErrMissingCategoryID = errors.New("product must reference a category")
)

// ValidationError carries the field that failed validation along with the
// underlying sentinel error so handlers can map it to a 400 response.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
