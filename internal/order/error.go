package order

import "errors"

var (
	// -- Authentication --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Assembly validation --
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductNotFound   = errors.New("product no longer exists")
	ErrProductInactive   = errors.New("product is no longer for sale")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPriceChanged      = errors.New("product price has changed since it was added to the cart")

	// -- Resource state --
	ErrOrderNotFound = errors.New("order not found")
)
