package usecase

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
	"lumera/pkg/utils"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddToCartInput struct {
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

func (uc *CartUseCase) AddToCart(ctx context.Context, input AddToCartInput) (*entity.CartItem, error) {
	if !utils.IsValidDocumentID(input.UserID) || !utils.IsValidDocumentID(input.ProductID) {
		return nil, errors.BadRequest("Invalid productId or userId", nil)
	}
	if input.Quantity < 1 {
		return nil, errors.BadRequest("quantity must be at least 1", nil)
	}

	item := &entity.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Name:      input.Name,
		Image:     input.Image,
		Price:     input.Price,
		Quantity:  input.Quantity,
	}

	return uc.cartRepo.AddOrIncrement(ctx, item)
}

// AdjustQuantity moves a line's quantity one step in either direction.
// Decrementing at quantity 1 is rejected; removal is its own operation.
func (uc *CartUseCase) AdjustQuantity(ctx context.Context, id, direction string) (*entity.CartItem, error) {
	item, err := uc.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch direction {
	case "increment":
		item.Quantity++
	case "decrement":
		if item.Quantity <= 1 {
			return nil, errors.BadRequest("Quantity cannot go below 1", nil)
		}
		item.Quantity--
	default:
		return nil, errors.BadRequest("Invalid update type", nil)
	}

	if err := uc.cartRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *CartUseCase) Remove(ctx context.Context, id string) error {
	return uc.cartRepo.Delete(ctx, id)
}

func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.DeleteByUser(ctx, userID)
}

// ListForUser serves each line with the product's current image, not the
// copy frozen at insert time.
func (uc *CartUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.Internal("Failed to resolve product for cart item", err)
		}
		item.Image = product.Image
	}

	return items, nil
}
