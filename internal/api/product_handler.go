package api

import (
	"net/http"
	"strconv"

	"storefront-be/internal/product"
	"storefront-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := product.QueryOptions{
		SortBy: product.SortOption(q.Get("sort")),
	}

	if category := q.Get("category"); category != "" {
		opts.Filters.Category = &category
	}
	if v := q.Get("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.Filters.MinPrice = &f
		}
	}
	if v := q.Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.Filters.MaxPrice = &f
		}
	}
	if v := q.Get("limit"); v != "" {
		opts.Limit, _ = strconv.Atoi(v)
	}
	if v := q.Get("offset"); v != "" {
		opts.Offset, _ = strconv.Atoi(v)
	}

	products, err := h.ProductSvc.GetProducts(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	total, err := h.ProductSvc.CountProducts(r.Context(), opts.Filters)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    total,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.ProductSvc.GetProductByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ProductSvc.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
