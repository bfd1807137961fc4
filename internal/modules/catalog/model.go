package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item with live stock and customer reviews.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	Ratings      float64   `json:"ratings"`
	NumOfReviews int       `json:"numOfReviews"`
	Reviews      []*Review `json:"reviews,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Review is a single customer review attached to a product.
type Review struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user"`
	Name    string    `json:"name"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment,omitempty"`
}
