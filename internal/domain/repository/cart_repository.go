package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

type CartRepository interface {
	// AddOrIncrement upserts the line keyed by (userId, productId) in a
	// single atomic operation: an existing line has its quantity
	// incremented by item.Quantity with the denormalized fields left
	// untouched; an absent line is created as given.
	AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	GetByID(ctx context.Context, id string) (*entity.CartItem, error)
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error)
}
