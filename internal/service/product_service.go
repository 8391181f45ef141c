package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

// ProductParams is the input for creating or updating a product.
type ProductParams struct {
	Name         string
	Description  string
	Ingredients  string
	Price        string
	Weight       int16
	CaloricValue int16
	CategoryID   uuid.UUID
}

// ProductService provides CRUD operations over catalog products.
type ProductService interface {
	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// ListProducts returns a page of products.
	ListProducts(ctx context.Context, page store.PageRequest) ([]*domain.Product, error)

	// ListProductsByCategory returns a page of products in the given
	// category.
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID, page store.PageRequest) ([]*domain.Product, error)

	// CreateProduct persists a new product after resolving its category.
	// Fails with store.ErrCategoryNotFound, persisting nothing, when the
	// category does not exist.
	CreateProduct(ctx context.Context, params ProductParams) (*domain.Product, error)

	// UpdateProduct modifies an existing product, resolving the category the
	// same way as CreateProduct.
	UpdateProduct(ctx context.Context, id uuid.UUID, params ProductParams) (*domain.Product, error)

	// DeleteProduct deletes a product by ID. Deleting a nonexistent product
	// is an error; a product referenced by order items cannot be deleted.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	productStore  store.ProductStore
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

var _ ProductService = (*ProductServiceImpl)(nil)

// NewProductService creates a ProductService.
func NewProductService(
	productStore store.ProductStore,
	categoryStore store.CategoryStore,
	log *slog.Logger,
) *ProductServiceImpl {
	return &ProductServiceImpl{
		productStore:  productStore,
		categoryStore: categoryStore,
		logger:        log.With("component", "product_service"),
	}
}

// GetProduct implements ProductService.GetProduct.
func (s *ProductServiceImpl) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrProductNotFound) {
			s.logger.Error("failed to retrieve product", "error", err, "product_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return product, nil
}

// ListProducts implements ProductService.ListProducts.
func (s *ProductServiceImpl) ListProducts(
	ctx context.Context,
	page store.PageRequest,
) ([]*domain.Product, error) {
	products, err := s.productStore.List(ctx, page)
	if err != nil {
		s.logger.Error("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListProductsByCategory implements ProductService.ListProductsByCategory.
func (s *ProductServiceImpl) ListProductsByCategory(
	ctx context.Context,
	categoryID uuid.UUID,
	page store.PageRequest,
) ([]*domain.Product, error) {
	// Resolve the category first so an unknown ID reads as not-found rather
	// than an empty page.
	if _, err := s.categoryStore.GetByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	products, err := s.productStore.ListByCategory(ctx, categoryID, page)
	if err != nil {
		s.logger.Error("failed to list products by category",
			"error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

// CreateProduct implements ProductService.CreateProduct.
func (s *ProductServiceImpl) CreateProduct(
	ctx context.Context,
	params ProductParams,
) (*domain.Product, error) {
	if err := s.resolveCategory(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(params.Name, params.Price, params.CategoryID)
	if err != nil {
		return nil, err
	}
	product.Description = params.Description
	product.Ingredients = params.Ingredients
	product.Weight = params.Weight
	product.CaloricValue = params.CaloricValue

	if err := s.productStore.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		"product_id", product.ID,
		"name", product.Name,
		"category_id", product.CategoryID)
	return product, nil
}

// UpdateProduct implements ProductService.UpdateProduct.
func (s *ProductServiceImpl) UpdateProduct(
	ctx context.Context,
	id uuid.UUID,
	params ProductParams,
) (*domain.Product, error) {
	product, err := s.productStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	if err := s.resolveCategory(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	product.Name = params.Name
	product.Description = params.Description
	product.Ingredients = params.Ingredients
	product.Price = params.Price
	product.Weight = params.Weight
	product.CaloricValue = params.CaloricValue
	product.CategoryID = params.CategoryID
	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productStore.Update(ctx, product); err != nil {
		s.logger.Error("failed to update product", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct implements ProductService.DeleteProduct.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productStore.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			s.logger.Debug("attempted to delete nonexistent product", "product_id", id)
		case errors.Is(err, store.ErrProductReferenced):
			s.logger.Debug("attempted to delete referenced product", "product_id", id)
		default:
			s.logger.Error("failed to delete product", "error", err, "product_id", id)
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("product deleted", "product_id", id)
	return nil
}

// resolveCategory checks that the referenced category exists before a
// product write touches the database.
func (s *ProductServiceImpl) resolveCategory(ctx context.Context, categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return domain.ErrMissingCategoryID
	}
	if _, err := s.categoryStore.GetByID(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to resolve category: %w", err)
	}
	return nil
}
