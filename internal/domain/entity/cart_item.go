package entity

import (
	"time"
)

// CartItem is one line in a user's cart. Name, image and price are copied
// from the product at insert time and never re-synced; the live product
// image is joined back in when the cart is listed.
type CartItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	ProductID string    `json:"productId" firestore:"productId"`
	Name      string    `json:"name" firestore:"name"`
	Image     string    `json:"image" firestore:"image"`
	Price     float64   `json:"price" firestore:"price"`
	Quantity  int64     `json:"quantity" firestore:"quantity"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
