package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/modshop/shop-api/internal/api"
	apiMiddleware "github.com/modshop/shop-api/internal/api/middleware"
	"github.com/modshop/shop-api/internal/domain"
)

// setupRouter builds the route table at startup. Route registration is
// explicit; there is no annotation-driven dispatch.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(app.authService)
	userHandler := api.NewUserHandler(app.userService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	productHandler := api.NewProductHandler(app.productService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	requireAdmin := authMiddleware.RequireRole(domain.RoleAdmin)
	rateLimit := apiMiddleware.RateLimit(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public, rate limited).
		r.Group(func(r chi.Router) {
			r.Use(rateLimit)
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/refresh", authHandler.RefreshToken)
		})

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/{id}", userHandler.Get)
			r.With(requireAdmin).Get("/users", userHandler.List)
			r.With(requireAdmin).Delete("/users/{id}", userHandler.Delete)

			r.Get("/categories", categoryHandler.List)
			r.Get("/categories/{id}", categoryHandler.Get)
			r.Get("/categories/{id}/products", productHandler.ListByCategory)
			r.With(requireAdmin).Post("/categories", categoryHandler.Create)
			r.With(requireAdmin).Put("/categories/{id}", categoryHandler.Update)
			r.With(requireAdmin).Delete("/categories/{id}", categoryHandler.Delete)

			r.Get("/products", productHandler.List)
			r.Get("/products/{id}", productHandler.Get)
			r.With(requireAdmin).Post("/products", productHandler.Create)
			r.With(requireAdmin).Put("/products/{id}", productHandler.Update)
			r.With(requireAdmin).Delete("/products/{id}", productHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
