package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

func discardLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	for _, u := range s.users {
		if u.Login == user.Login {
			return store.ErrLoginExists
		}
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByLoginOrEmail(_ context.Context, userData string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Login == userData || u.Email == userData {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) List(_ context.Context, _ store.PageRequest) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) WithTx(_ *sql.Tx) store.UserStore { return s }

// fakeCategoryStore is an in-memory CategoryStore.
type fakeCategoryStore struct {
	categories map[uuid.UUID]*domain.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*domain.Category)}
}

func (s *fakeCategoryStore) add(t *testing.T, name string) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(name)
	if err != nil {
		t.Fatalf("failed to build category fixture: %v", err)
	}
	s.categories[category.ID] = category
	return category
}

func (s *fakeCategoryStore) Create(_ context.Context, category *domain.Category) error {
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *fakeCategoryStore) List(_ context.Context, _ store.PageRequest) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeCategoryStore) Update(_ context.Context, category *domain.Category) error {
	if _, ok := s.categories[category.ID]; !ok {
		return store.ErrCategoryNotFound
	}
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.categories[id]; !ok {
		return store.ErrCategoryNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *fakeCategoryStore) WithTx(_ *sql.Tx) store.CategoryStore { return s }

// fakeProductStore is an in-memory ProductStore. IDs in referenced mark
// products that order items still point at.
type fakeProductStore struct {
	products   map[uuid.UUID]*domain.Product
	referenced map[uuid.UUID]bool
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{
		products:   make(map[uuid.UUID]*domain.Product),
		referenced: make(map[uuid.UUID]bool),
	}
}

func (s *fakeProductStore) add(t *testing.T, name, price string, categoryID uuid.UUID) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(name, price, categoryID)
	if err != nil {
		t.Fatalf("failed to build product fixture: %v", err)
	}
	s.products[product.ID] = product
	return product
}

func (s *fakeProductStore) Create(_ context.Context, product *domain.Product) error {
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *fakeProductStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProductStore) List(_ context.Context, _ store.PageRequest) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeProductStore) ListByCategory(
	_ context.Context,
	categoryID uuid.UUID,
	_ store.PageRequest,
) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeProductStore) Update(_ context.Context, product *domain.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return store.ErrProductNotFound
	}
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *fakeProductStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.products[id]; !ok {
		return store.ErrProductNotFound
	}
	if s.referenced[id] {
		return store.ErrProductReferenced
	}
	delete(s.products, id)
	return nil
}

func (s *fakeProductStore) WithTx(_ *sql.Tx) store.ProductStore { return s }
