package entity

import (
	"time"
)

type Product struct {
	ID               string    `json:"id" firestore:"id"`
	Name             string    `json:"name" firestore:"name"`
	Category         string    `json:"category" firestore:"category"`
	Description      string    `json:"description" firestore:"description"`
	Price            float64   `json:"price" firestore:"price"`
	OldPrice         float64   `json:"oldPrice,omitempty" firestore:"oldPrice,omitempty"`
	Image            string    `json:"image" firestore:"image"`
	AdditionalImages []string  `json:"additionalImages" firestore:"additionalImages"`
	Size             string    `json:"size,omitempty" firestore:"size,omitempty"`
	Color            string    `json:"color,omitempty" firestore:"color,omitempty"`
	Metal            string    `json:"metal,omitempty" firestore:"metal,omitempty"`
	Rating           float64   `json:"rating" firestore:"rating"`
	AuthorID         string    `json:"author" firestore:"authorId"`
	IsTrending       bool      `json:"isTrending" firestore:"isTrending"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
