package payment

import (
	"encoding/json"
	"time"
)

// Payment is the locally persisted record of a gateway confirmation, kept
// for audit and display. payment_key is unique, so retried confirmations
// never produce a second row.
type Payment struct {
	ID         int64           `json:"id"`
	PaymentKey string          `json:"payment_key"`
	OrderID    string          `json:"order_id"`
	Status     string          `json:"status"`
	Amount     float64         `json:"amount"`
	Method     string          `json:"method"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	Raw        json.RawMessage `json:"-"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StatusDone is the gateway's terminal success status. Anything else on a
// successful confirm call (e.g. a waiting virtual-account state) is a valid
// non-final outcome and leaves the order untouched.
const StatusDone = "DONE"

// Confirmation is the gateway's payment object as returned by the confirm
// endpoint. Only the fields this service acts on are typed; the full body
// is retained in Raw.
type Confirmation struct {
	PaymentKey  string  `json:"paymentKey"`
	OrderID     string  `json:"orderId"`
	OrderName   string  `json:"orderName"`
	Status      string  `json:"status"`
	Method      string  `json:"method"`
	TotalAmount float64 `json:"totalAmount"`
	RequestedAt string  `json:"requestedAt"`
	ApprovedAt  string  `json:"approvedAt"`
	Receipt     *struct {
		URL string `json:"url"`
	} `json:"receipt,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type ConfirmParams struct {
	UserID     string
	PaymentKey string
	OrderID    string
	Amount     float64
}
