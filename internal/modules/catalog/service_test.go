package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*Product
}

func newMemRepo() *memRepo { return &memRepo{products: make(map[uuid.UUID]*Product)} }

func (r *memRepo) CreateProduct(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.products[p.ID] = &c
	return nil
}

func (r *memRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	p, ok := r.products[uid]
	if !ok {
		return nil, ErrProductNotFound
	}
	c := *p
	return &c, nil
}

func (r *memRepo) ListProducts(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Product
	for _, p := range r.products {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *memRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrProductNotFound
	}
	p, ok := r.products[uid]
	if !ok {
		return ErrProductNotFound
	}
	p.Stock = stock
	return nil
}

func (r *memRepo) UpdateReviews(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[p.ID]
	if !ok {
		return ErrProductNotFound
	}
	stored.Reviews = p.Reviews
	stored.NumOfReviews = p.NumOfReviews
	stored.Ratings = p.Ratings
	return nil
}

func TestAddProduct(t *testing.T) {
	svc := NewService(newMemRepo())

	p, err := svc.AddProduct(context.Background(), AddProductRequest{
		Name:  "Widget",
		Price: 10,
		Stock: 25,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, 25, p.Stock)

	got, err := svc.GetProduct(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestAddProduct_NameRequired(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.AddProduct(context.Background(), AddProductRequest{Price: 10})
	assert.EqualError(t, err, "name is required")
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.GetProduct(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateStock_Unchecked(t *testing.T) {
	repo := newMemRepo()
	p := &Product{ID: uuid.New(), Name: "Widget", Stock: 2}
	require.NoError(t, repo.CreateProduct(context.Background(), p))

	// Negative stock is persisted as given.
	require.NoError(t, repo.UpdateStock(context.Background(), p.ID.String(), -3))
	got, err := repo.GetProductByID(context.Background(), p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, -3, got.Stock)
}
