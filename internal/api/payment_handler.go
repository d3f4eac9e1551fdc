package api

import (
	"encoding/json"
	"net/http"

	"storefront-be/internal/payment"
	"storefront-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

type confirmPaymentRequest struct {
	PaymentKey string  `json:"paymentKey"`
	OrderID    string  `json:"orderId"`
	Amount     float64 `json:"amount"`
}

// ConfirmPayment accepts the gateway's success-callback parameters and runs
// the confirmation sequence. Responds {success, payment} or {error}.
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "login required", http.StatusUnauthorized)
		return
	}

	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	if req.PaymentKey == "" || req.OrderID == "" || req.Amount == 0 {
		utils.WriteJSONError(w, "paymentKey, orderId and amount are required", http.StatusBadRequest)
		return
	}
	if req.Amount < 0 {
		utils.WriteJSONError(w, "invalid payment amount", http.StatusBadRequest)
		return
	}

	conf, err := h.PaymentSvc.Confirm(r.Context(), payment.ConfirmParams{
		UserID:     userID,
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"payment": conf,
	})
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "login required", http.StatusUnauthorized)
		return
	}

	p, err := h.PaymentSvc.GetPaymentByOrder(r.Context(), userID, chi.URLParam(r, "orderId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if p == nil {
		utils.WriteJSONError(w, "payment not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}
