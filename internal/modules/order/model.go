package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfilment state of an order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusReturned   OrderStatus = "Returned"
)

// Order represents a customer's purchase.
type Order struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user"`
	OrderItems    []*OrderItem `json:"orderItems"`
	ShippingInfo  ShippingInfo `json:"shippingInfo"`
	ItemsPrice    float64      `json:"itemsPrice"`
	TaxPrice      float64      `json:"taxPrice"`
	ShippingPrice float64      `json:"shippingPrice"`
	TotalPrice    float64      `json:"totalPrice"`
	PaymentInfo   PaymentInfo  `json:"paymentInfo"`
	OrderStatus   OrderStatus  `json:"orderStatus"`
	// UniqueCode is assigned once at creation and referenced after delivery
	// (e.g. to unlock product reviews).
	UniqueCode  string     `json:"uniquecode"`
	PaidAt      time.Time  `json:"paidAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	ReturnedAt  *time.Time `json:"returnedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`

	// Owner is the owning user's summary, attached on reads that populate it.
	Owner *Owner `json:"userDetails,omitempty"`
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	ProductID uuid.UUID `json:"product"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// ShippingInfo is the destination the order ships to.
type ShippingInfo struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PhoneNo    string `json:"phoneNo,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

// PaymentInfo holds the external payment reference, accepted as given.
type PaymentInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Owner is the name/email summary of the user who placed the order.
type Owner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	OrderItems    []*OrderItem `json:"orderItems"`
	ShippingInfo  ShippingInfo `json:"shippingInfo"`
	ItemsPrice    float64      `json:"itemsPrice"`
	TaxPrice      float64      `json:"taxPrice"`
	ShippingPrice float64      `json:"shippingPrice"`
	TotalPrice    float64      `json:"totalPrice"`
	PaymentInfo   PaymentInfo  `json:"paymentInfo"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}
