package catalog

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when no product exists for the given id.
var ErrProductNotFound = errors.New("product not found")

// Repository defines data access for products and their reviews.
type Repository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, p *Product) error

	// GetProductByID retrieves a product with its reviews loaded.
	// Returns ErrProductNotFound if no such product exists.
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// ListProducts returns every product, without reviews.
	ListProducts(ctx context.Context) ([]*Product, error)

	// UpdateStock writes the stock count as given. The write is unchecked:
	// no store-level validation runs, negative values are persisted as-is.
	UpdateStock(ctx context.Context, id string, stock int) error

	// UpdateReviews replaces the product's review set and its aggregate
	// rating fields in a single transaction, bypassing validation.
	UpdateReviews(ctx context.Context, p *Product) error
}
