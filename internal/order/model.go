package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PriceEpsilon is the smallest currency unit. Price and amount comparisons
// tolerate differences strictly below it.
const PriceEpsilon = 0.01

// ShippingAddress is embedded in the order row as JSON.
type ShippingAddress struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	PostalCode    string  `json:"postalCode"`
	Address       string  `json:"address"`
	DetailAddress *string `json:"detailAddress,omitempty"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TotalAmount     float64         `json:"total_amount"`
	Status          Status          `json:"status"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	OrderNote       *string         `json:"order_note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []OrderItem `json:"order_items,omitempty"`
}

// OrderItem captures the product name and price as they were at order time.
// Rows are written once with their parent order and never mutated, so the
// snapshot survives later catalog changes.
type OrderItem struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateOrderParams struct {
	UserID          string
	ShippingAddress ShippingAddress
	OrderNote       *string
}
