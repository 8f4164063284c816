package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	UserID    string  `json:"userId" validate:"required"`
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Image     string  `json:"image" validate:"required"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Quantity  int64   `json:"quantity" validate:"required,gt=0"`
}

type updateCartRequest struct {
	Type string `json:"type" validate:"required,oneof=increment decrement"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Price and quantity must be numbers", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.cartUseCase.AddToCart(c.Request().Context(), usecase.AddToCartInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id := c.Param("id")

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.cartUseCase.AdjustQuantity(c.Request().Context(), id, req.Type)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	id := c.Param("id")

	if err := h.cartUseCase.Remove(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Item removed from cart",
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	userID := c.Param("userId")

	if err := h.cartUseCase.Clear(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}

func (h *CartHandler) ListCart(c echo.Context) error {
	userID := c.Param("userId")

	items, err := h.cartUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}
