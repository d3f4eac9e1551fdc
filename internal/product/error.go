package product

import "errors"

var (
	// ErrProductNotFound means the product id does not resolve (or resolves
	// to a row the caller may not see).
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive means the product exists but is not purchasable.
	ErrProductInactive = errors.New("product is not available for sale")
)
