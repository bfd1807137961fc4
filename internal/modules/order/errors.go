package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order exists for the given id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrAlreadyDelivered is returned when a status update targets an order
	// that has already reached Delivered.
	ErrAlreadyDelivered = errors.New("order has already been delivered")

	// ErrNotDelivered is returned when a return is requested for an order
	// that has not been delivered yet.
	ErrNotDelivered = errors.New("only delivered orders can be returned")
)
