package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modshop/shop-api/internal/domain"
)

func registerBody() map[string]any {
	return map[string]any{
		"login":     "newuser",
		"email":     "new@example.com",
		"password":  "password123",
		"firstname": "Jane",
		"lastname":  "Doe",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeAuthResponse(t *testing.T, w *httptest.ResponseRecorder) AuthResponse {
	t.Helper()
	var resp AuthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates a customer", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc, _ := newTestAuthService(t, userStore)
		handler := NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", registerBody())

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeAuthResponse(t, w)
		assert.Equal(t, string(domain.RoleCustomer), resp.Role)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "new@example.com", resp.UserData)
	})

	t.Run("a role field in the payload has no effect", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc, _ := newTestAuthService(t, userStore)
		handler := NewAuthHandler(svc)

		body := registerBody()
		body["role"] = "ADMIN"
		w := postJSON(t, handler.Register, "/api/auth/register", body)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeAuthResponse(t, w)
		assert.Equal(t, string(domain.RoleCustomer), resp.Role)

		stored, err := userStore.GetByID(context.Background(), resp.UserID)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleCustomer, stored.Role)
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t, newFakeUserStore())
		handler := NewAuthHandler(svc)

		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing login", func(b map[string]any) { delete(b, "login") }},
			{"bad email", func(b map[string]any) { b["email"] = "not-an-email" }},
			{"short password", func(b map[string]any) { b["password"] = "short" }},
			{"bad birth date", func(b map[string]any) { b["birth_date"] = "31-12-1990" }},
			{"bad phone", func(b map[string]any) { b["phone_number"] = "not-a-phone" }},
		}

		for _, tc := range cases {
			body := registerBody()
			tc.mutate(body)
			w := postJSON(t, handler.Register, "/api/auth/register", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, tc.name)
		}
	})

	t.Run("duplicate login returns 409", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t, newFakeUserStore())
		handler := NewAuthHandler(svc)

		w := postJSON(t, handler.Register, "/api/auth/register", registerBody())
		require.Equal(t, http.StatusCreated, w.Code)

		body := registerBody()
		body["email"] = "other@example.com"
		w = postJSON(t, handler.Register, "/api/auth/register", body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestAuthService(t, newFakeUserStore())
		handler := NewAuthHandler(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *AuthHandler {
		t.Helper()
		svc, _ := newTestAuthService(t, newFakeUserStore())
		handler := NewAuthHandler(svc)
		w := postJSON(t, handler.Register, "/api/auth/register", registerBody())
		require.Equal(t, http.StatusCreated, w.Code)
		return handler
	}

	t.Run("succeeds with valid credentials", func(t *testing.T) {
		t.Parallel()
		handler := setup(t)

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"user_data": "newuser",
			"password":  "password123",
		})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeAuthResponse(t, w)
		assert.Equal(t, "newuser", resp.UserData)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password and unknown user both return 401", func(t *testing.T) {
		t.Parallel()
		handler := setup(t)

		wrongPw := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"user_data": "newuser",
			"password":  "wrongpassword",
		})
		unknown := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"user_data": "nobody",
			"password":  "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		handler := setup(t)

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]any{
			"user_data": "newuser",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlerRefreshToken(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) (*AuthHandler, AuthResponse) {
		t.Helper()
		svc, _ := newTestAuthService(t, newFakeUserStore())
		handler := NewAuthHandler(svc)
		w := postJSON(t, handler.Register, "/api/auth/register", registerBody())
		require.Equal(t, http.StatusCreated, w.Code)
		return handler, decodeAuthResponse(t, w)
	}

	t.Run("echoes the refresh token with a fresh access token", func(t *testing.T) {
		t.Parallel()
		handler, reg := register(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+reg.RefreshToken)
		w := httptest.NewRecorder()
		handler.RefreshToken(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeAuthResponse(t, w)
		assert.Equal(t, reg.UserID, resp.UserID)
		assert.Equal(t, reg.RefreshToken, resp.RefreshToken)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("missing header is an empty 200", func(t *testing.T) {
		t.Parallel()
		handler, _ := register(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		w := httptest.NewRecorder()
		handler.RefreshToken(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("malformed header is an empty 200", func(t *testing.T) {
		t.Parallel()
		handler, _ := register(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Authorization", "Token abcdef")
		w := httptest.NewRecorder()
		handler.RefreshToken(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, w.Body.Len())
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		t.Parallel()
		handler, _ := register(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		handler.RefreshToken(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		t.Parallel()
		handler, reg := register(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+reg.AccessToken)
		w := httptest.NewRecorder()
		handler.RefreshToken(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
