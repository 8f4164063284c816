package usecase

import (
	"context"
	"testing"
	"time"

	"lumera/internal/domain/entity"
	"lumera/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Products:      []OrderLineInput{{ProductID: "product-1", Quantity: 2}},
		Amount:        120.50,
		Email:         "buyer@example.com",
		PaymentMethod: entity.PaymentMethodUPI,
	}
}

func TestCreateOrderStatusFollowsPaymentMethod(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo(), nil)
	ctx := context.Background()

	input := validOrderInput()
	input.PaymentMethod = entity.PaymentMethodCOD
	order, err := uc.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	input = validOrderInput()
	order, err = uc.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestCreateOrderRejectsMissingFields(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo(), nil)
	ctx := context.Background()

	cases := []func(*CreateOrderInput){
		func(i *CreateOrderInput) { i.Products = nil },
		func(i *CreateOrderInput) { i.Amount = 0 },
		func(i *CreateOrderInput) { i.Email = "" },
		func(i *CreateOrderInput) { i.PaymentMethod = "" },
		func(i *CreateOrderInput) { i.PaymentMethod = "CARD" },
		func(i *CreateOrderInput) { i.Products = []OrderLineInput{{ProductID: "p", Quantity: 0}} },
	}

	for _, mutate := range cases {
		input := validOrderInput()
		mutate(&input)
		_, err := uc.CreateOrder(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestCreateOrderSendsConfirmationMail(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewOrderUseCase(newFakeOrderRepo(), mailer)
	ctx := context.Background()

	_, err := uc.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	// The mail goes out on a separate goroutine.
	assert.Eventually(t, func() bool {
		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		return len(mailer.sent) == 1 && mailer.sent[0] == "buyer@example.com"
	}, time.Second, 10*time.Millisecond)
}

func TestUpdateStatusAcceptsOnlyKnownTargets(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	for _, target := range []string{entity.OrderStatusPending, entity.OrderStatusProcessing, entity.OrderStatusCompleted} {
		updated, err := uc.UpdateStatus(ctx, order.ID, target)
		require.NoError(t, err)
		assert.Equal(t, target, updated.Status)
	}

	for _, target := range []string{entity.OrderStatusShipped, "cancelled", ""} {
		_, err := uc.UpdateStatus(ctx, order.ID, target)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	uc := NewOrderUseCase(newFakeOrderRepo(), nil)
	ctx := context.Background()

	_, err := uc.GetByID(ctx, "bad/id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.GetByID(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDeleteOrderReturnsDeletedRecord(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	order, err := uc.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	deleted, err := uc.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)

	_, err = uc.GetByID(ctx, order.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListByEmailNewestFirst(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := NewOrderUseCase(repo, nil)
	ctx := context.Background()

	first, err := uc.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)
	second, err := uc.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	orders, err := uc.ListByEmail(ctx, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
