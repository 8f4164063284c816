package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"

	PaymentMethodCOD = "COD"
	PaymentMethodUPI = "UPI"
)

type OrderLine struct {
	ProductID string `json:"productId" firestore:"productId"`
	Quantity  int64  `json:"quantity" firestore:"quantity"`
}

type Order struct {
	ID            string      `json:"id" firestore:"id"`
	Products      []OrderLine `json:"products" firestore:"products"`
	Amount        float64     `json:"amount" firestore:"amount"`
	Email         string      `json:"email" firestore:"email"`
	PaymentMethod string      `json:"paymentMethod" firestore:"paymentMethod"`
	Status        string      `json:"status" firestore:"status"`
	CreatedAt     time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time   `json:"updated_at" firestore:"updatedAt"`
}
