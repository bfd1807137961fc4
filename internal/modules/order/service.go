package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kabi09/AKcart/internal/metrics"
	"github.com/Kabi09/AKcart/internal/modules/catalog"
	"github.com/Kabi09/AKcart/internal/modules/notification"
	"github.com/Kabi09/AKcart/internal/modules/user"
)

// Service defines the order management business logic.
type Service interface {
	// CreateOrder persists a new order for the user and sends a
	// purchase-confirmation email.
	CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*Order, error)

	// GetOrder retrieves an order with the owner's name/email attached.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// ListUserOrders returns all orders placed by a user.
	ListUserOrders(ctx context.Context, userID string) ([]*Order, error)

	// ListAllOrders returns every order plus the sum of their total prices.
	ListAllOrders(ctx context.Context) (float64, []*Order, error)

	// UpdateStatus advances an order's status, decrements product stock,
	// and notifies the owner on shipment and delivery.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error

	// DeleteOrder removes an order permanently.
	DeleteOrder(ctx context.Context, id string) error

	// ReturnOrder marks a delivered order as returned, purges the owner's
	// product reviews, and notifies the owner.
	ReturnOrder(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	productRepo catalog.Repository
	userRepo    user.Repository
	mailer      notification.Sender
	metrics     *metrics.OrderMetrics
}

// NewService creates a new order service.
func NewService(repo Repository, productRepo catalog.Repository, userRepo user.Repository,
	mailer notification.Sender, m *metrics.OrderMetrics) Service {
	return &service{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		metrics:     m,
	}
}

func (s *service) CreateOrder(ctx context.Context, userID string, req CreateOrderRequest) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	o := &Order{
		ID:            uuid.New(),
		UserID:        uid,
		OrderItems:    req.OrderItems,
		ShippingInfo:  req.ShippingInfo,
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
		PaymentInfo:   req.PaymentInfo,
		OrderStatus:   StatusProcessing,
		UniqueCode:    generateUniqueCode(),
		PaidAt:        time.Now(),
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	s.metrics.OrderCreated()

	owner, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order owner lookup: %w", err)
	}

	body := fmt.Sprintf(`Hi %s,

Thank you for your purchase!

Order Details:
%s

Total: $%s

We appreciate your business!
- The Team
`, owner.Name, itemLines(o.OrderItems), formatAmount(o.TotalPrice))

	if err := s.mailer.Send(ctx, owner.Email, "Thank You for Your Purchase!", body); err != nil {
		return nil, err
	}
	s.metrics.EmailSent()

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetUserByID(ctx, o.UserID.String()); err == nil {
		o.Owner = &Owner{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}
	return o, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *service) ListAllOrders(ctx context.Context) (float64, []*Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return 0, nil, err
	}
	var totalAmount float64
	for _, o := range orders {
		totalAmount += o.TotalPrice
	}
	return totalAmount, orders, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	owner, err := s.userRepo.GetUserByID(ctx, o.UserID.String())
	if err != nil {
		return fmt.Errorf("order owner lookup: %w", err)
	}

	if o.OrderStatus == StatusDelivered {
		return ErrAlreadyDelivered
	}

	// Stock is decremented for every status update, whatever the target
	// status, and each write is persisted before the order itself. A
	// failure past this point leaves the decrements in place.
	for _, item := range o.OrderItems {
		if err := s.decrementStock(ctx, item.ProductID.String(), item.Quantity); err != nil {
			return err
		}
	}

	// The requested status is stored as given, without checking it against
	// the known set.
	o.OrderStatus = OrderStatus(req.OrderStatus)

	switch o.OrderStatus {
	case StatusShipped:
		body := fmt.Sprintf(`Hi %s,

Your order has been shipped and is on the way!

Order Details:
%s

Shipping To:
%s, %s, %s

We'll notify you again once your order is delivered.

Thank you for shopping with us!
- The Team
`, owner.Name, itemLines(o.OrderItems),
			o.ShippingInfo.Address, o.ShippingInfo.City, o.ShippingInfo.Country)

		if err := s.mailer.Send(ctx, owner.Email, "Your Order Has Been Shipped!", body); err != nil {
			return err
		}
		s.metrics.EmailSent()

	case StatusDelivered:
		now := time.Now()
		o.DeliveredAt = &now

		body := fmt.Sprintf(`Hi %s,

Your order has been delivered successfully.

Order Details:
%s

Your Unique Code: %s

You can use this code to review the products you've received.

Thanks for shopping with us!
- The Team
`, owner.Name, itemLines(o.OrderItems), o.UniqueCode)

		if err := s.mailer.Send(ctx, owner.Email, "Your Order Has Been Delivered", body); err != nil {
			return err
		}
		s.metrics.EmailSent()
	}

	if err := s.repo.SaveOrder(ctx, o); err != nil {
		return err
	}
	s.metrics.StatusUpdated(string(o.OrderStatus))
	return nil
}

func (s *service) DeleteOrder(ctx context.Context, id string) error {
	if _, err := s.repo.GetOrderByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.metrics.OrderDeleted()
	return nil
}

func (s *service) ReturnOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	owner, err := s.userRepo.GetUserByID(ctx, o.UserID.String())
	if err != nil {
		return fmt.Errorf("order owner lookup: %w", err)
	}

	if o.OrderStatus != StatusDelivered {
		return ErrNotDelivered
	}

	now := time.Now()
	o.OrderStatus = StatusReturned
	o.ReturnedAt = &now

	// Purge the owner's review from each product in the order. Products
	// that have since been deleted are skipped.
	for _, item := range o.OrderItems {
		p, err := s.productRepo.GetProductByID(ctx, item.ProductID.String())
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		kept := p.Reviews[:0]
		for _, rev := range p.Reviews {
			if rev.UserID != o.UserID {
				kept = append(kept, rev)
			}
		}
		p.Reviews = kept
		p.NumOfReviews = len(kept)

		var sum float64
		for _, rev := range kept {
			sum += rev.Rating
		}
		if len(kept) == 0 {
			p.Ratings = 0
		} else {
			p.Ratings = sum / float64(len(kept))
		}

		if err := s.productRepo.UpdateReviews(ctx, p); err != nil {
			return err
		}
	}

	body := fmt.Sprintf(`Hi %s,

We've received your return request for order #%s.

Returned Products:
%s

Your product reviews for these items have been removed.

We'll process your return shortly.

- The Team
`, owner.Name, o.ID, itemLines(o.OrderItems))

	if err := s.mailer.Send(ctx, owner.Email, "Return Request Received", body); err != nil {
		return err
	}
	s.metrics.EmailSent()

	if err := s.repo.SaveOrder(ctx, o); err != nil {
		return err
	}
	s.metrics.OrderReturned()
	return nil
}

// decrementStock loads the product, lowers its stock by qty, and persists the
// new count immediately with store validation bypassed.
func (s *service) decrementStock(ctx context.Context, productID string, qty int) error {
	p, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("update stock for product %s: %w", productID, err)
	}
	p.Stock -= qty
	return s.productRepo.UpdateStock(ctx, productID, p.Stock)
}

// ── helpers ───────────────────────────────────────────────────────────────────

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateUniqueCode creates the 8-character reference token assigned once at
// order creation.
func generateUniqueCode() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

// itemLines renders one "- Name (Qty: N) — $P" line per order item.
func itemLines(items []*OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (Qty: %d) — $%s", item.Name, item.Quantity, formatAmount(item.Price)))
	}
	return strings.Join(lines, "\n")
}

// formatAmount prints a price without trailing zeros ($10, not $10.00).
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
