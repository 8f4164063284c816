package entity

import (
	"time"
)

type Coupon struct {
	ID                 string    `json:"id" firestore:"id"`
	Code               string    `json:"code" firestore:"code"`
	DiscountPercentage float64   `json:"discountPercentage" firestore:"discountPercentage"`
	ExpiryDate         time.Time `json:"expiryDate" firestore:"expiryDate"`
	Active             bool      `json:"active" firestore:"active"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}
