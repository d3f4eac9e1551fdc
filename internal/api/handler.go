package api

import (
	"errors"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
	"storefront-be/internal/utils"
)

// Handler bundles the service dependencies for the REST surface.
type Handler struct {
	ProductSvc product.Service
	CartSvc    cart.Service
	OrderSvc   order.Service
	PaymentSvc payment.Service
}

func NewHandler(
	productSvc product.Service,
	cartSvc cart.Service,
	orderSvc order.Service,
	paymentSvc payment.Service,
) *Handler {
	return &Handler{
		ProductSvc: productSvc,
		CartSvc:    cartSvc,
		OrderSvc:   orderSvc,
		PaymentSvc: paymentSvc,
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses with
// a human-readable message. Store and gateway internals never reach the
// client.
func writeServiceError(w http.ResponseWriter, err error) {
	var gwErr *payment.GatewayError

	switch {
	case errors.Is(err, cart.ErrUserNotAuthenticated),
		errors.Is(err, order.ErrUserNotAuthenticated),
		errors.Is(err, payment.ErrUserNotAuthenticated):
		utils.WriteJSONError(w, "login required", http.StatusUnauthorized)

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, payment.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, product.ErrProductInactive),
		errors.Is(err, order.ErrProductInactive),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrPriceChanged),
		errors.Is(err, payment.ErrAmountMismatch):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)

	case errors.As(err, &gwErr):
		// Gateway rejections pass the provider's message through verbatim.
		utils.WriteJSONError(w, gwErr.Message, http.StatusInternalServerError)

	case errors.Is(err, payment.ErrGatewayTimeout):
		utils.WriteJSONError(w, err.Error(), http.StatusGatewayTimeout)

	default:
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
