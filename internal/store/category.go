package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by ID. Returns ErrCategoryNotFound if
	// absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// List returns a page of categories ordered by the requested sort column.
	List(ctx context.Context, page PageRequest) ([]*domain.Category, error)

	// Update modifies an existing category. Returns ErrCategoryNotFound if
	// absent.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by ID. Returns ErrCategoryNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a CategoryStore bound to the given transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
