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

// CategoryService provides CRUD operations over catalog categories.
type CategoryService interface {
	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// ListCategories returns a page of categories.
	ListCategories(ctx context.Context, page store.PageRequest) ([]*domain.Category, error)

	// CreateCategory persists a new category with the given name.
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)

	// UpdateCategory renames an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error)

	// DeleteCategory deletes a category by ID. Deleting a nonexistent
	// category is an error.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

var _ CategoryService = (*CategoryServiceImpl)(nil)

// NewCategoryService creates a CategoryService.
func NewCategoryService(categoryStore store.CategoryStore, log *slog.Logger) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryStore: categoryStore,
		logger:        log.With("component", "category_service"),
	}
}

// GetCategory implements CategoryService.GetCategory.
func (s *CategoryServiceImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Error("failed to retrieve category", "error", err, "category_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return category, nil
}

// ListCategories implements CategoryService.ListCategories.
func (s *CategoryServiceImpl) ListCategories(
	ctx context.Context,
	page store.PageRequest,
) ([]*domain.Category, error) {
	categories, err := s.categoryStore.List(ctx, page)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory implements CategoryService.CreateCategory.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		s.logger.Error("failed to create category", "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// UpdateCategory implements CategoryService.UpdateCategory.
func (s *CategoryServiceImpl) UpdateCategory(
	ctx context.Context,
	id uuid.UUID,
	name string,
) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	category.Name = name
	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryStore.Update(ctx, category); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", id)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory implements CategoryService.DeleteCategory.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("attempted to delete nonexistent category", "category_id", id)
		} else {
			s.logger.Error("failed to delete category", "error", err, "category_id", id)
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}
