package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type firestoreCouponRepository struct {
	client *firestore.Client
}

func NewFirestoreCouponRepository(client *firestore.Client) repository.CouponRepository {
	return &firestoreCouponRepository{
		client: client,
	}
}

// The code doubles as the document key, so uniqueness is enforced by the
// store itself: Create fails with AlreadyExists on a duplicate.
func (r *firestoreCouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	coupon.ID = coupon.Code

	now := time.Now()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now

	_, err := r.client.Collection("coupons").Doc(coupon.Code).Create(ctx, coupon)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Coupon code already exists")
		}
		return errors.Internal("Failed to create coupon", err)
	}

	return nil
}

func (r *firestoreCouponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	doc, err := r.client.Collection("coupons").Doc(code).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Coupon", err)
		}
		return nil, errors.Internal("Failed to get coupon", err)
	}

	var coupon entity.Coupon
	if err := doc.DataTo(&coupon); err != nil {
		return nil, errors.Internal("Failed to parse coupon data", err)
	}

	return &coupon, nil
}
