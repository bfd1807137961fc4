package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order and its items atomically in a transaction.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order with its items by UUID.
	// Returns ErrOrderNotFound if no such order exists.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// ListOrdersByUser returns all orders placed by a specific user.
	ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error)

	// ListOrders returns every order in the store.
	ListOrders(ctx context.Context) ([]*Order, error)

	// SaveOrder persists the mutable fields of an existing order
	// (status and lifecycle timestamps).
	SaveOrder(ctx context.Context, o *Order) error

	// DeleteOrder removes an order and its items permanently.
	DeleteOrder(ctx context.Context, id string) error
}
