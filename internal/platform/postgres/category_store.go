package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

var categorySortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

// CategoryStore implements store.CategoryStore backed by PostgreSQL.
type CategoryStore struct {
	db store.DBTX
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore creates a CategoryStore on the given database handle.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// WithTx returns a CategoryStore bound to the given transaction.
func (s *CategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &CategoryStore{db: tx}
}

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query,
		category.ID, category.Name, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, mapped
	}

	return &category, nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context, page store.PageRequest) ([]*domain.Category, error) {
	page = page.Normalize()
	column, ok := categorySortColumns[page.SortBy]
	if !ok {
		column = "name"
	}

	query := fmt.Sprintf(
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY %s %s LIMIT $1 OFFSET $2`,
		column, sortDirection(page.SortOrder))

	rows, err := s.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return categories, nil
}

// Update implements store.CategoryStore.Update.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `UPDATE categories SET name = $2, updated_at = now() WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, category.ID, category.Name)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}

// Delete implements store.CategoryStore.Delete.
func (s *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrCategoryNotFound)
}
