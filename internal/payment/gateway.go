package payment

import "context"

// Gateway is the payment provider's confirm surface. The provider owns
// idempotency for the (paymentKey, orderId, amount) tuple; this service only
// relays the call.
type Gateway interface {
	Confirm(ctx context.Context, paymentKey, orderID string, amount float64) (*Confirmation, error)
}
