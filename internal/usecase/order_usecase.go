package usecase

import (
	"context"
	"fmt"
	"time"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/pkg/errors"
	"lumera/pkg/logger"
	"lumera/pkg/utils"
)

// Status values accepted by the status-update operation. The entity also
// declares "shipped" but no transition path reaches it.
var validStatusTargets = map[string]bool{
	entity.OrderStatusPending:    true,
	entity.OrderStatusProcessing: true,
	entity.OrderStatusCompleted:  true,
}

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	mailer    service.Mailer
}

func NewOrderUseCase(orderRepo repository.OrderRepository, mailer service.Mailer) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		mailer:    mailer,
	}
}

type OrderLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type CreateOrderInput struct {
	Products      []OrderLineInput `json:"products"`
	Amount        float64          `json:"amount"`
	Email         string           `json:"email"`
	PaymentMethod string           `json:"paymentMethod"`
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Products) == 0 || input.Amount == 0 || input.Email == "" || input.PaymentMethod == "" {
		return nil, errors.BadRequest("All fields are required", nil)
	}
	if input.PaymentMethod != entity.PaymentMethodCOD && input.PaymentMethod != entity.PaymentMethodUPI {
		return nil, errors.BadRequest("paymentMethod must be COD or UPI", nil)
	}

	lines := make([]entity.OrderLine, 0, len(input.Products))
	for _, line := range input.Products {
		if line.ProductID == "" || line.Quantity < 1 {
			return nil, errors.BadRequest("each order line needs a productId and a quantity of at least 1", nil)
		}
		lines = append(lines, entity.OrderLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	status := entity.OrderStatusProcessing
	if input.PaymentMethod == entity.PaymentMethodCOD {
		status = entity.OrderStatusPending
	}

	order := &entity.Order{
		Products:      lines,
		Amount:        input.Amount,
		Email:         input.Email,
		PaymentMethod: input.PaymentMethod,
		Status:        status,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if uc.mailer != nil {
		go func(o entity.Order) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			body := fmt.Sprintf("Your order %s for %.2f was placed successfully. Status: %s.", o.ID, o.Amount, o.Status)
			if err := uc.mailer.Send(ctx, o.Email, "Order confirmation", body); err != nil {
				logger.Warn("Order confirmation mail failed for %s: %v", o.ID, err)
			}
		}(*order)
	}

	return order, nil
}

func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	if !validStatusTargets[status] {
		return nil, errors.BadRequest("Invalid or missing status", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByEmail(ctx, email)
}

func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !utils.IsValidDocumentID(id) {
		return nil, errors.BadRequest("Invalid order ID", nil)
	}

	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.ListAll(ctx)
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return order, nil
}
