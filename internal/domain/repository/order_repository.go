package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// ListByEmail returns the orders for email, newest first.
	ListByEmail(ctx context.Context, email string) ([]*entity.Order, error)
	// ListAll returns every order, newest first. An empty store yields an
	// empty slice, not an error.
	ListAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
