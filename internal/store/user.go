package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already be set.
	// Returns ErrLoginExists or ErrEmailExists when a unique index is
	// violated.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByLoginOrEmail retrieves a user whose login or email matches the
	// given value. Returns ErrUserNotFound if absent.
	GetByLoginOrEmail(ctx context.Context, userData string) (*domain.User, error)

	// List returns a page of users ordered by the requested sort column.
	List(ctx context.Context, page PageRequest) ([]*domain.User, error)

	// Update modifies an existing user. Returns ErrUserNotFound if absent and
	// duplicate errors when login/email would collide.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. Returns ErrUserNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
