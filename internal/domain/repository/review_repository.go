package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	// DeleteByProduct removes every review referencing productID and
	// returns how many were deleted.
	DeleteByProduct(ctx context.Context, productID string) (int, error)
}
