package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/modshop/shop-api/internal/api/middleware"
	"github.com/modshop/shop-api/internal/api/shared"
	"github.com/modshop/shop-api/internal/platform/logger"
	"github.com/modshop/shop-api/internal/service/auth"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *auth.Service
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	params := auth.RegisterParams{
		Login:       req.Login,
		Email:       req.Email,
		Password:    req.Password,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		MiddleName:  req.MiddleName,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	}
	if req.BirthDate != "" {
		// Format already checked by the datetime validation tag.
		birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
		params.BirthDate = &birthDate
	}

	result, err := h.authService.Register(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.authService.Login(r.Context(), req.UserData, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAuthResponse(result))
}

// RefreshToken handles POST /api/auth/refresh. The refresh token is read
// from the Authorization header. A missing or malformed header produces an
// empty 200 response rather than an error: unauthenticated refresh probes
// are expected traffic, not a fault.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	result, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) ||
			errors.Is(err, auth.ErrExpiredToken) ||
			errors.Is(err, auth.ErrWrongTokenType) ||
			errors.Is(err, auth.ErrTokenNotYetValid) {
			HandleAPIError(w, r, err, "")
			return
		}
		logger.FromContext(r.Context()).Error("token refresh failed", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *auth.Result) AuthResponse {
	return AuthResponse{
		UserID:       result.UserID,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Role:         string(result.Role),
		UserData:     result.UserData,
	}
}
