package usecase

import (
	"context"
	"time"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type CouponUseCase struct {
	couponRepo repository.CouponRepository
}

func NewCouponUseCase(couponRepo repository.CouponRepository) *CouponUseCase {
	return &CouponUseCase{
		couponRepo: couponRepo,
	}
}

type CreateCouponInput struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	ExpiryDate         string  `json:"expiryDate"`
}

func (uc *CouponUseCase) CreateCoupon(ctx context.Context, input CreateCouponInput) (*entity.Coupon, error) {
	if input.Code == "" || input.DiscountPercentage == 0 || input.ExpiryDate == "" {
		return nil, errors.BadRequest("All fields are required", nil)
	}
	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return nil, errors.BadRequest("discountPercentage must be between 0 and 100", nil)
	}

	expiry, err := parseDate(input.ExpiryDate)
	if err != nil {
		return nil, errors.BadRequest("expiryDate must be a valid date", err)
	}

	coupon := &entity.Coupon{
		Code:               input.Code,
		DiscountPercentage: input.DiscountPercentage,
		ExpiryDate:         expiry,
		Active:             true,
	}

	if err := uc.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// ValidateCoupon resolves a code to its discount. Expiry and the active
// flag are deliberately not checked; callers own that decision.
func (uc *CouponUseCase) ValidateCoupon(ctx context.Context, code string) (float64, error) {
	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	return coupon.DiscountPercentage, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
