package payment

import (
	"errors"
	"fmt"
)

var (
	// -- Authentication --
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	// -- Validation --
	// ErrOrderNotFound covers both a missing order and one owned by someone
	// else; callers cannot tell the two apart.
	ErrOrderNotFound  = errors.New("order not found")
	ErrAmountMismatch = errors.New("payment amount does not match the order total")

	// -- Gateway --
	ErrGatewayTimeout = errors.New("payment gateway did not respond in time")
)

// GatewayError carries the gateway's rejection verbatim.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
