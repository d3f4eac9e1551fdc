package cart

import "errors"

var (
	// -- Authentication --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation & input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource state --
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	// -- Constants (external systems) --
	PgUniqueViolation = "23505"
)
