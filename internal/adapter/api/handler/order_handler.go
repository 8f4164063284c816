package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	Products      []orderLineRequest `json:"products" validate:"required,min=1,dive"`
	Amount        float64            `json:"amount" validate:"required,gt=0"`
	Email         string             `json:"email" validate:"required,email"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=COD UPI"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	lines := make([]usecase.OrderLineInput, len(req.Products))
	for i, line := range req.Products {
		lines[i] = usecase.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Products:      lines,
		Amount:        req.Amount,
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	})
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id := c.Param("id")

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Order status updated successfully",
		"order":   order,
	})
}

func (h *OrderHandler) ListOrdersByEmail(c echo.Context) error {
	email := c.Param("email")

	orders, err := h.orderUseCase.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("id")

	order, err := h.orderUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.orderUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id := c.Param("id")

	order, err := h.orderUseCase.DeleteOrder(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Order deleted successfully",
		"order":   order,
	})
}
