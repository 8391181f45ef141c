package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

func seedUser(t *testing.T, s *fakeUserStore, login, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(login, email, "password123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$somethinghashed"
	user.Password = ""
	require.NoError(t, s.Create(context.Background(), user))
	return user
}

func TestUserServiceGetUser(t *testing.T) {
	t.Parallel()

	userStore := newFakeUserStore()
	svc := NewUserService(userStore, discardLogger(t))
	user := seedUser(t, userStore, "alice", "alice@example.com")

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Login)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetUser(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserServiceListUsers(t *testing.T) {
	t.Parallel()

	userStore := newFakeUserStore()
	svc := NewUserService(userStore, discardLogger(t))
	seedUser(t, userStore, "alice", "alice@example.com")
	seedUser(t, userStore, "bob", "bob@example.com")

	users, err := svc.ListUsers(context.Background(), store.PageRequest{}.Normalize())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserServiceDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing user", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc := NewUserService(userStore, discardLogger(t))
		user := seedUser(t, userStore, "alice", "alice@example.com")

		require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

		_, err := svc.GetUser(context.Background(), user.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("deleting a nonexistent user is an error", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc := NewUserService(userStore, discardLogger(t))

		err := svc.DeleteUser(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
