package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/modshop/shop-api/internal/api/shared"
	"github.com/modshop/shop-api/internal/domain"
	"github.com/modshop/shop-api/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
	}
}

// List handles GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context(), parsePageRequest(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// ListByCategory handles GET /api/categories/{id}/products.
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	products, err := h.productService.ListProductsByCategory(r.Context(), categoryID, parsePageRequest(r))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Create handles POST /api/products. An unresolvable category yields 404
// and persists nothing.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), toProductParams(req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, toProductParams(req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) decodeProductRequest(
	w http.ResponseWriter,
	r *http.Request,
) (ProductRequest, bool) {
	var req ProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return req, false
	}
	return req, true
}

func toProductParams(req ProductRequest) service.ProductParams {
	return service.ProductParams{
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Price:        req.Price,
		Weight:       req.Weight,
		CaloricValue: req.CaloricValue,
		CategoryID:   req.CategoryID,
	}
}
