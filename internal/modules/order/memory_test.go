package order

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Kabi09/AKcart/internal/modules/catalog"
	"github.com/Kabi09/AKcart/internal/modules/notification"
	"github.com/Kabi09/AKcart/internal/modules/user"
)

// In-memory doubles for the order service's collaborators. They hand out
// copies so a test observes only what was explicitly persisted.

type memOrderRepo struct {
	mu       sync.RWMutex
	orders   map[uuid.UUID]Order
	failSave error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]Order)}
}

func copyOrder(o Order) Order {
	items := make([]*OrderItem, len(o.OrderItems))
	for i, item := range o.OrderItems {
		c := *item
		items[i] = &c
	}
	o.OrderItems = items
	return o
}

func (r *memOrderRepo) CreateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *memOrderRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	o, ok := r.orders[uid]
	if !ok {
		return nil, ErrOrderNotFound
	}
	c := copyOrder(o)
	return &c, nil
}

func (r *memOrderRepo) ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Order
	for _, o := range r.orders {
		if o.UserID.String() == userID {
			c := copyOrder(o)
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Order
	for _, o := range r.orders {
		c := copyOrder(o)
		out = append(out, &c)
	}
	return out, nil
}

func (r *memOrderRepo) SaveOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	if _, ok := r.orders[o.ID]; !ok {
		return ErrOrderNotFound
	}
	r.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *memOrderRepo) DeleteOrder(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrOrderNotFound
	}
	delete(r.orders, uid)
	return nil
}

type memProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]catalog.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]catalog.Product)}
}

func copyProduct(p catalog.Product) catalog.Product {
	reviews := make([]*catalog.Review, len(p.Reviews))
	for i, rev := range p.Reviews {
		c := *rev
		reviews[i] = &c
	}
	p.Reviews = reviews
	return p
}

func (r *memProductRepo) CreateProduct(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = copyProduct(*p)
	return nil
}

func (r *memProductRepo) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, catalog.ErrProductNotFound
	}
	p, ok := r.products[uid]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	c := copyProduct(p)
	return &c, nil
}

func (r *memProductRepo) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*catalog.Product
	for _, p := range r.products {
		c := copyProduct(p)
		out = append(out, &c)
	}
	return out, nil
}

func (r *memProductRepo) UpdateStock(ctx context.Context, id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return catalog.ErrProductNotFound
	}
	p, ok := r.products[uid]
	if !ok {
		return catalog.ErrProductNotFound
	}
	p.Stock = stock
	r.products[uid] = p
	return nil
}

func (r *memProductRepo) UpdateReviews(ctx context.Context, p *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.products[p.ID]
	if !ok {
		return catalog.ErrProductNotFound
	}
	stored.Reviews = copyProduct(*p).Reviews
	stored.NumOfReviews = p.NumOfReviews
	stored.Ratings = p.Ratings
	r.products[p.ID] = stored
	return nil
}

type memUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *memUserRepo) CreateUser(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, user.ErrUserNotFound
	}
	u, ok := r.users[uid]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	c := u
	return &c, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			c := u
			return &c, nil
		}
	}
	return nil, user.ErrUserNotFound
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

// fakeSender records outgoing mail, optionally failing every send.
type fakeSender struct {
	mu   sync.Mutex
	sent []sentEmail
	fail error
}

func (s *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.sent = append(s.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

var _ notification.Sender = (*fakeSender)(nil)
