package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionFailed   = errors.New("order submission failed")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrFailedUpdateStatus = errors.New("failed to update order status")
	ErrUnauthorized       = errors.New("unauthorized")
)
