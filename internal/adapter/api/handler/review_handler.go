package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Rating    float64 `json:"rating" validate:"required,min=0,max=5"`
	Comment   string  `json:"comment"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	reviews, err := h.reviewUseCase.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}
