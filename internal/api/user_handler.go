package api

import (
	"net/http"

	"github.com/modshop/shop-api/internal/api/middleware"
	"github.com/modshop/shop-api/internal/api/shared"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), parsePageRequest(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Get handles GET /api/users/{id}. Customers may only fetch their own
// record; admins may fetch any.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	callerID, ok := middleware.UserIDFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	role, _ := middleware.RoleFromRequest(r)
	if callerID != id && role != domain.RoleAdmin {
		shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient privileges")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}. Deleting a nonexistent user
// returns 404; nothing is removed.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
