package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
)

// ProductStore defines the interface for product persistence.
type ProductStore interface {
	// Create saves a new product. Returns ErrInvalidEntity when the
	// referenced category does not exist.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID. Returns ErrProductNotFound if
	// absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// List returns a page of products ordered by the requested sort column.
	List(ctx context.Context, page PageRequest) ([]*domain.Product, error)

	// ListByCategory returns a page of products belonging to the given
	// category.
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page PageRequest) ([]*domain.Product, error)

	// Update modifies an existing product. Returns ErrProductNotFound if
	// absent.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product by ID. Returns ErrProductNotFound if absent
	// and ErrProductReferenced when order items still reference the product.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ProductStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProductStore
}
