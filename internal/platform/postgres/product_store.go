package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"weight":     "weight",
	"created_at": "created_at",
}

// ProductStore implements store.ProductStore backed by PostgreSQL.
type ProductStore struct {
	db store.DBTX
}

var _ store.ProductStore = (*ProductStore)(nil)

// NewProductStore creates a ProductStore on the given database handle.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// WithTx returns a ProductStore bound to the given transaction.
func (s *ProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &ProductStore{db: tx}
}

// price is selected as text so NUMERIC values round-trip without float
// precision loss.
const productColumns = `id, name, description, ingredients, price::text, weight,
	caloric_value, category_id, created_at, updated_at`

// Create implements store.ProductStore.Create.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO products (id, name, description, ingredients, price, weight,
			caloric_value, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		product.ID, product.Name, nullString(product.Description),
		nullString(product.Ingredients), product.Price, product.Weight,
		product.CaloricValue, product.CategoryID, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.ProductStore.GetByID.
func (s *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProductRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// List implements store.ProductStore.List.
func (s *ProductStore) List(ctx context.Context, page store.PageRequest) ([]*domain.Product, error) {
	page = page.Normalize()
	query := fmt.Sprintf(
		`SELECT `+productColumns+` FROM products ORDER BY %s %s LIMIT $1 OFFSET $2`,
		productSortColumn(page.SortBy), sortDirection(page.SortOrder))

	rows, err := s.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, MapError(err)
	}
	return collectProducts(rows)
}

// ListByCategory implements store.ProductStore.ListByCategory.
func (s *ProductStore) ListByCategory(
	ctx context.Context,
	categoryID uuid.UUID,
	page store.PageRequest,
) ([]*domain.Product, error) {
	page = page.Normalize()
	query := fmt.Sprintf(
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY %s %s LIMIT $2 OFFSET $3`,
		productSortColumn(page.SortBy), sortDirection(page.SortOrder))

	rows, err := s.db.QueryContext(ctx, query, categoryID, page.Size, page.Offset())
	if err != nil {
		return nil, MapError(err)
	}
	return collectProducts(rows)
}

// Update implements store.ProductStore.Update.
func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE products
		SET name = $2, description = $3, ingredients = $4, price = $5::numeric,
			weight = $6, caloric_value = $7, category_id = $8, updated_at = now()
		WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query,
		product.ID, product.Name, nullString(product.Description),
		nullString(product.Ingredients), product.Price, product.Weight,
		product.CaloricValue, product.CategoryID)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrProductNotFound)
}

// Delete implements store.ProductStore.Delete. A foreign key violation here
// means order items still reference the product, which blocks deletion.
func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrProductReferenced, err)
		}
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrProductNotFound)
}

func productSortColumn(sortBy string) string {
	if column, ok := productSortColumns[sortBy]; ok {
		return column
	}
	return "name"
}

func collectProducts(rows *sql.Rows) ([]*domain.Product, error) {
	defer func() { _ = rows.Close() }()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return products, nil
}

func scanProductRow(row rowScanner) (*domain.Product, error) {
	var (
		product     domain.Product
		description sql.NullString
		ingredients sql.NullString
	)

	err := row.Scan(&product.ID, &product.Name, &description, &ingredients,
		&product.Price, &product.Weight, &product.CaloricValue,
		&product.CategoryID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, MapError(err)
	}

	product.Description = description.String
	product.Ingredients = ingredients.String

	return &product, nil
}
