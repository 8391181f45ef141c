package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modshop/shop-api/internal/config"
	"github.com/modshop/shop-api/internal/domain"
)

const testSecret = "test-jwt-secret-thats-at-least-32-chars"

func testUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:    uuid.New(),
		Login: "testuser",
		Email: "test@example.com",
		Role:  domain.RoleCustomer,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:                   testSecret,
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 7 * 24 * 60,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:                   "too-short",
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 7 * 24 * 60,
		})
		require.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return now })
	user := testUser(t)

	token, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Login, claims.Login)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return now })
	user := testUser(t)

	token, err := svc.GenerateRefreshToken(context.Background(), user)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(24*time.Hour)))
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return clock })
	user := testUser(t)

	token, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	// Just before expiry the token still validates.
	clock = now.Add(time.Hour - time.Second)
	_, err = svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)

	// Just after expiry it does not.
	clock = now.Add(time.Hour + time.Second)
	_, err = svc.ValidateAccessToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongType(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return now })
	user := testUser(t)

	accessToken, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(context.Background(), accessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = svc.ValidateAccessToken(context.Background(), refreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return now })
	other := NewTestJWTService("another-secret-thats-also-32-chars-long", time.Hour, 24*time.Hour, func() time.Time { return now })
	user := testUser(t)

	token, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTestJWTService(testSecret, time.Hour, 24*time.Hour, func() time.Time { return now })

	cases := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a jwt", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.ValidateAccessToken(context.Background(), tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
