package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
)

// JWTService defines operations for minting and validating JWT tokens.
type JWTService interface {
	// GenerateAccessToken creates a signed, short-lived access token
	// carrying the user's identity and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)

	// GenerateRefreshToken creates a signed refresh token with a longer
	// lifetime, used to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateAccessToken verifies the token's signature, expiry, and type,
	// returning the embedded claims on success.
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token the same way.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the validated content of a token. Subject identifies the user;
// Role is the authorization role at issuance time. Tokens are stateless:
// validity is determined purely by signature and expiry.
type Claims struct {
	UserID    uuid.UUID
	Login     string
	Role      domain.Role
	TokenType string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
