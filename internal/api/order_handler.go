package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"storefront-be/internal/order"
	"storefront-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type createOrderRequest struct {
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	OrderNote       *string               `json:"orderNote,omitempty"`
}

var phonePattern = regexp.MustCompile(`^[0-9-]+$`)

func validateShippingAddress(a order.ShippingAddress) string {
	switch {
	case a.Name == "":
		return "recipient name is required"
	case a.Phone == "":
		return "phone number is required"
	case !phonePattern.MatchString(a.Phone):
		return "phone number may only contain digits and dashes"
	case a.PostalCode == "":
		return "postal code is required"
	case a.Address == "":
		return "address is required"
	}
	return ""
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "login required", http.StatusUnauthorized)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	if msg := validateShippingAddress(req.ShippingAddress); msg != "" {
		utils.WriteJSONError(w, msg, http.StatusBadRequest)
		return
	}

	orderID, err := h.OrderSvc.CreateOrder(r.Context(), order.CreateOrderParams{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		OrderNote:       req.OrderNote,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]string{"orderId": orderID})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.OrderSvc.GetOrders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// GetOrder returns the order with its line items. A missing order and a
// foreign order produce the same 404.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "login required", http.StatusUnauthorized)
		return
	}

	o, err := h.OrderSvc.GetOrderDetail(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if o == nil {
		utils.WriteJSONError(w, "order not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}
