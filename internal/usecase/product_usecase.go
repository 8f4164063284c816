package usecase

import (
	"context"
	"strconv"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
	"lumera/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

type CreateProductInput struct {
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	OldPrice         float64  `json:"oldPrice"`
	Image            string   `json:"image"`
	AdditionalImages []string `json:"additionalImages"`
	Size             string   `json:"size"`
	Color            string   `json:"color"`
	Metal            string   `json:"metal"`
	AuthorID         string   `json:"author"`
	IsTrending       bool     `json:"isTrending"`
}

type UpdateProductInput struct {
	Name             *string   `json:"name"`
	Category         *string   `json:"category"`
	Description      *string   `json:"description"`
	Price            *float64  `json:"price"`
	OldPrice         *float64  `json:"oldPrice"`
	Image            *string   `json:"image"`
	AdditionalImages *[]string `json:"additionalImages"`
	Size             *string   `json:"size"`
	Color            *string   `json:"color"`
	Metal            *string   `json:"metal"`
	IsTrending       *bool     `json:"isTrending"`
}

type ProductDetail struct {
	Product *entity.Product           `json:"product"`
	Reviews []entity.ReviewWithAuthor `json:"reviews"`
}

type DeleteProductResult struct {
	ReviewsDeleted int
	CascadeFailed  bool
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Category == "" || input.Description == "" ||
		input.Price == 0 || input.Image == "" || input.AuthorID == "" {
		return nil, errors.BadRequest("name, category, description, price, image and author are required", nil)
	}

	product := &entity.Product{
		Name:             input.Name,
		Category:         input.Category,
		Description:      input.Description,
		Price:            input.Price,
		OldPrice:         input.OldPrice,
		Image:            input.Image,
		AdditionalImages: input.AdditionalImages,
		Size:             input.Size,
		Color:            input.Color,
		Metal:            input.Metal,
		Rating:           0,
		AuthorID:         input.AuthorID,
		IsTrending:       input.IsTrending,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Seed the rating from reviews already referencing this id. Normally
	// there are none; this is the only point where the rating is computed.
	reviews, err := uc.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		logger.Warn("Rating seed skipped for product %s: %v", product.ID, err)
		return product, nil
	}
	if len(reviews) > 0 {
		var total float64
		for _, review := range reviews {
			total += review.Rating
		}
		product.Rating = total / float64(len(reviews))
		if err := uc.productRepo.Update(ctx, product); err != nil {
			return nil, err
		}
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	annotated := make([]entity.ReviewWithAuthor, 0, len(reviews))
	for _, review := range reviews {
		entry := entity.ReviewWithAuthor{Review: *review}
		if user, err := uc.userRepo.GetByID(ctx, review.UserID); err == nil {
			entry.Username = user.Username
			entry.Email = user.Email
		} else {
			logger.Warn("Reviewer %s lookup failed: %v", review.UserID, err)
		}
		annotated = append(annotated, entry)
	}

	return &ProductDetail{Product: product, Reviews: annotated}, nil
}

// ListProducts translates the raw query values into a store filter:
// "all" disables the category/color predicates, and a price range only
// applies when both bounds parse as numbers.
func (uc *ProductUseCase) ListProducts(ctx context.Context, category, color, minPrice, maxPrice string, page, pageSize int) ([]*entity.Product, int64, error) {
	filter := repository.ProductFilter{}

	if category != "" && category != "all" {
		filter.Category = category
	}
	if color != "" && color != "all" {
		filter.Color = color
	}
	if minPrice != "" && maxPrice != "" {
		min, errMin := strconv.ParseFloat(minPrice, 64)
		max, errMax := strconv.ParseFloat(maxPrice, 64)
		if errMin == nil && errMax == nil {
			filter.Price = &repository.PriceRange{Min: min, Max: max}
		}
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	return uc.productRepo.List(ctx, filter, pageSize, offset)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	return uc.productRepo.Search(ctx, query)
}

func (uc *ProductUseCase) TrendingProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListTrending(ctx)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OldPrice != nil {
		product.OldPrice = *input.OldPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.AdditionalImages != nil {
		product.AdditionalImages = *input.AdditionalImages
	}
	if input.Size != nil {
		product.Size = *input.Size
	}
	if input.Color != nil {
		product.Color = *input.Color
	}
	if input.Metal != nil {
		product.Metal = *input.Metal
	}
	if input.IsTrending != nil {
		product.IsTrending = *input.IsTrending
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the product, then cascades into its reviews. The
// cascade is best effort: a failure there is reported alongside the
// successful delete, never instead of it.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) (*DeleteProductResult, error) {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	deleted, err := uc.reviewRepo.DeleteByProduct(ctx, id)
	if err != nil {
		logger.Error("Review cascade failed for product %s: %v", id, err)
		return &DeleteProductResult{ReviewsDeleted: deleted, CascadeFailed: true}, nil
	}

	return &DeleteProductResult{ReviewsDeleted: deleted}, nil
}

func (uc *ProductUseCase) RelatedProducts(ctx context.Context, id string, limit int) ([]*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.productRepo.ListRelated(ctx, product, limit)
}
