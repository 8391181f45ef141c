package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

// RegisterParams is the input for user registration. There is deliberately
// no role field: every registration produces a CUSTOMER.
type RegisterParams struct {
	Login       string
	Email       string
	Password    string
	Firstname   string
	Lastname    string
	MiddleName  string
	Gender      string
	PhoneNumber string
	BirthDate   *time.Time
}

// Result is the outcome of a successful register, login, or refresh.
// UserData echoes the identifier the flow resolved the user by.
type Result struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	Role         domain.Role
	UserData     string
}

// Service orchestrates registration, login, and token refresh. It holds no
// persistent state of its own; uniqueness is enforced by the store's unique
// indexes and token validity is stateless.
type Service struct {
	userStore store.UserStore
	jwt       JWTService
	hasher    PasswordHasher
	txRunner  store.TxRunner
	logger    *slog.Logger

	// dummyHash is compared against when a login lookup misses, so the
	// unknown-user and wrong-password paths cost the same amount of time.
	dummyHash string
}

// NewService creates an authentication Service.
func NewService(
	userStore store.UserStore,
	jwt JWTService,
	hasher PasswordHasher,
	txRunner store.TxRunner,
	log *slog.Logger,
) (*Service, error) {
	dummyHash, err := hasher.Hash(uuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &Service{
		userStore: userStore,
		jwt:       jwt,
		hasher:    hasher,
		txRunner:  txRunner,
		logger:    log.With("component", "auth_service"),
		dummyHash: dummyHash,
	}, nil
}

// Register creates a new user and issues an initial token pair. Login and
// email collisions surface as store.ErrLoginExists / store.ErrEmailExists
// from the unique indexes; there is no racy check-then-insert.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Result, error) {
	user, err := domain.NewUser(params.Login, params.Email, params.Password)
	if err != nil {
		return nil, err
	}

	user.Firstname = params.Firstname
	user.Lastname = params.Lastname
	user.MiddleName = params.MiddleName
	user.PhoneNumber = params.PhoneNumber
	user.BirthDate = params.BirthDate
	if params.Gender != "" {
		gender, err := domain.ParseGender(params.Gender)
		if err != nil {
			return nil, err
		}
		user.Gender = gender
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("registration rejected: duplicate login or email",
				"login", user.Login)
		} else {
			s.logger.Error("failed to persist user", "error", err)
		}
		return nil, err
	}

	return s.issueTokens(ctx, user, user.Email)
}

// Login authenticates a user by login or email. Lookup misses and password
// mismatches are indistinguishable: both return ErrInvalidCredentials, and
// the miss path still performs a hash comparison.
func (s *Service) Login(ctx context.Context, userData, password string) (*Result, error) {
	user, err := s.userStore.GetByLoginOrEmail(ctx, userData)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn the same bcrypt cost as a real comparison.
			_ = s.hasher.Compare(s.dummyHash, password)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user, user.Login)
}

// Refresh validates a refresh token and mints a new access token for its
// subject. The refresh token itself is echoed back unchanged; this design
// does not rotate refresh tokens.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Result, error) {
	claims, err := s.jwt.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// The subject no longer exists; the token is as good as invalid.
			return nil, ErrInvalidToken
		}
		s.logger.Error("failed to load refresh token subject", "error", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &Result{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
		UserData:     user.Login,
	}, nil
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User, userData string) (*Result, error) {
	accessToken, err := s.jwt.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &Result{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
		UserData:     userData,
	}, nil
}
