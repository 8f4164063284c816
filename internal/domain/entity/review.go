package entity

import (
	"time"
)

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	ProductID string    `json:"productId" firestore:"productId"`
	UserID    string    `json:"userId" firestore:"userId"`
	Rating    float64   `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ReviewWithAuthor is a review annotated with minimal reviewer identity,
// used when serving a product detail page.
type ReviewWithAuthor struct {
	Review
	Username string `json:"username"`
	Email    string `json:"email"`
}
