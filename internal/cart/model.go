package cart

import (
	"time"

	"storefront-be/internal/product"
)

// CartItem is one (user, product) line. The unique index on
// (user_id, product_id) guarantees a user never holds two lines for the
// same product.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Product is embedded on reads for display; order assembly never
	// trusts it for price or stock.
	Product *product.Product `json:"product,omitempty"`
}

// CartTotal is derived on every call and never persisted.
type CartTotal struct {
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"itemCount"`
}

type AddToCartParams struct {
	UserID    string
	ProductID string
	Quantity  int
}

type CreateCartItemParams struct {
	UserID    string
	ProductID string
	Quantity  int
}

type UpdateCartParams struct {
	UserID     string
	CartItemID string
	Quantity   int
}
