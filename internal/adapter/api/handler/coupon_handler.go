package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type CouponHandler struct {
	couponUseCase *usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase *usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

type createCouponRequest struct {
	Code               string  `json:"code" validate:"required"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"required,gt=0,max=100"`
	ExpiryDate         string  `json:"expiryDate" validate:"required"`
}

type validateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var req createCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	coupon, err := h.couponUseCase.CreateCoupon(c.Request().Context(), usecase.CreateCouponInput{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		ExpiryDate:         req.ExpiryDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Coupon created successfully!",
		"coupon":  coupon,
	})
}

func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	discount, err := h.couponUseCase.ValidateCoupon(c.Request().Context(), req.Code)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]float64{
		"discountPercentage": discount,
	})
}
