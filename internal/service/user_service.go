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

// UserService provides read and delete operations over users. Creation goes
// through the authentication service's registration flow.
type UserService interface {
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers returns a page of users.
	ListUsers(ctx context.Context, page store.PageRequest) ([]*domain.User, error)

	// DeleteUser deletes a user by ID. Deleting a nonexistent user is an
	// error, not a no-op.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a UserService.
func NewUserService(userStore store.UserStore, log *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		logger:    log.With("component", "user_service"),
	}
}

// GetUser implements UserService.GetUser.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// ListUsers implements UserService.ListUsers.
func (s *UserServiceImpl) ListUsers(ctx context.Context, page store.PageRequest) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx, page)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser implements UserService.DeleteUser.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to delete nonexistent user", "user_id", userID)
		} else {
			s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
