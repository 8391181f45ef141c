package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/store"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrValidation)
	}

	return id, nil
}

// parsePageRequest reads pagination and sort parameters from the query
// string: page, size, sort_by, sort_order. Out-of-range values are clamped
// by PageRequest.Normalize; unknown sort columns fall back to the store's
// default.
func parsePageRequest(r *http.Request) store.PageRequest {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))

	return store.PageRequest{
		Page:      page,
		Size:      size,
		SortBy:    q.Get("sort_by"),
		SortOrder: store.SortOrder(q.Get("sort_order")),
	}.Normalize()
}
