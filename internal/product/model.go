package product

import "time"

// Product mirrors the products table. The catalog is owned by an external
// management process; this service only ever reads it, except for the stock
// decrement performed during order assembly.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	Category      *string   `json:"category,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SortOption selects the ordering of a product listing.
type SortOption string

const (
	SortCreatedAtDesc SortOption = "created_at_desc"
	SortCreatedAtAsc  SortOption = "created_at_asc"
	SortPriceDesc     SortOption = "price_desc"
	SortPriceAsc      SortOption = "price_asc"
	SortNameAsc       SortOption = "name_asc"
)

// Filters narrows a product listing. Nil fields are ignored.
type Filters struct {
	Category *string
	MinPrice *float64
	MaxPrice *float64

	// IncludeInactive widens the listing beyond purchasable products.
	// Only internal callers set this; the public catalog never does.
	IncludeInactive bool
}

// QueryOptions bundles filtering, sorting and pagination for listings.
type QueryOptions struct {
	Filters Filters
	SortBy  SortOption
	Limit   int
	Offset  int
}
