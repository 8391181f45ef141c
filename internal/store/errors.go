package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a uniqueness
	// constraint (e.g. a second user with the same login).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or a
	// storage constraint before being persisted.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a transaction fails to commit or
	// an operation inside it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("%w: product", ErrNotFound)

	// Entity-specific "duplicate" errors. Both login and email carry unique
	// indexes; the postgres layer maps the violated constraint to one of
	// these.

	ErrLoginExists = fmt.Errorf("%w: login", ErrDuplicate)
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrProductReferenced is returned when a product cannot be deleted
	// because order items still reference it.
	ErrProductReferenced = errors.New("product is referenced by order items")
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of uniqueness violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
