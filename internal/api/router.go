package api

import (
	"net/http"

	"storefront-be/internal/metrics"
	"storefront-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the REST surface with the shared middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Get("/categories", h.ListCategories)

		r.Get("/cart", h.GetCart)
		r.Get("/cart/count", h.GetCartCount)
		r.Post("/cart", h.AddToCart)
		r.Delete("/cart", h.ClearCart)
		r.Patch("/cart/{id}", h.UpdateCartItem)
		r.Delete("/cart/{id}", h.RemoveCartItem)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrder)

		r.Post("/payments/confirm", h.ConfirmPayment)
		r.Get("/payments/{orderId}", h.GetPayment)
	})

	return r
}
