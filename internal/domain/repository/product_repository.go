package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

// PriceRange is applied all-or-nothing: a filter either carries both
// bounds or no price predicate at all.
type PriceRange struct {
	Min float64
	Max float64
}

type ProductFilter struct {
	Category string
	Color    string
	Price    *PriceRange
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]*entity.Product, error)
	ListTrending(ctx context.Context) ([]*entity.Product, error)
	ListRelated(ctx context.Context, source *entity.Product, limit int) ([]*entity.Product, error)
}
