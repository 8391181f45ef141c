package api

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/service/auth"
	"github.com/modshop/shop-api/internal/store"
)

const testSecret = "test-jwt-secret-thats-at-least-32-chars"

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

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

// passthroughTxRunner invokes fn directly with a nil transaction.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}

func newTestAuthService(t *testing.T, userStore store.UserStore) (*auth.Service, auth.JWTService) {
	t.Helper()

	jwtService := auth.NewTestJWTService(
		testSecret, time.Hour, 24*time.Hour, func() time.Time { return testClock })
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	svc, err := auth.NewService(
		userStore, jwtService, hasher, passthroughTxRunner{}, testLogger(t))
	require.NoError(t, err)
	return svc, jwtService
}
