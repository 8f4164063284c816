package usecase

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type CreateReviewInput struct {
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

// CreateReview stores the review as-is. The product rating is NOT
// recomputed here; aggregation only happens when a product is created.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.BadRequest("rating must be between 0 and 5", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByProduct(ctx, productID)
}
