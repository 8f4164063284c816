package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

type CouponRepository interface {
	// Create fails with a Conflict error when the code already exists.
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
}
