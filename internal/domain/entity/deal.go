package entity

import (
	"time"
)

// Deal is a singleton promotional record. The store pins it to a single
// well-known document so "create" and "update" collapse into one upsert.
type Deal struct {
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Discount    float64   `json:"discount" firestore:"discount"`
	ImageURL    string    `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	EndDate     time.Time `json:"endDate" firestore:"endDate"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
