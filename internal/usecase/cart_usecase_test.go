package usecase

import (
	"context"
	"testing"

	"lumera/internal/domain/entity"
	"lumera/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartUseCase, *fakeCartRepo, *fakeProductRepo) {
	t.Helper()
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	return NewCartUseCase(cartRepo, productRepo), cartRepo, productRepo
}

func TestAddToCartAccumulatesSingleLine(t *testing.T) {
	uc, cartRepo, _ := newCartFixture(t)
	ctx := context.Background()

	input := AddToCartInput{
		UserID:    "user-1",
		ProductID: "product-1",
		Name:      "Silver Ring",
		Image:     "ring.jpg",
		Price:     49.99,
		Quantity:  2,
	}

	for i := 0; i < 3; i++ {
		_, err := uc.AddToCart(ctx, input)
		require.NoError(t, err)
	}

	items, err := cartRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(6), items[0].Quantity)
	assert.Equal(t, "Silver Ring", items[0].Name)
}

func TestAddToCartRejectsInvalidIdentifiers(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	ctx := context.Background()

	cases := []AddToCartInput{
		{UserID: "", ProductID: "product-1", Quantity: 1},
		{UserID: "user-1", ProductID: "bad/id", Quantity: 1},
		{UserID: "..", ProductID: "product-1", Quantity: 1},
	}

	for _, input := range cases {
		_, err := uc.AddToCart(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestAdjustQuantityIncrementAndDecrement(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := uc.AddToCart(ctx, AddToCartInput{
		UserID: "user-1", ProductID: "product-1", Name: "Ring", Image: "r.jpg", Price: 10, Quantity: 2,
	})
	require.NoError(t, err)

	updated, err := uc.AdjustQuantity(ctx, item.ID, "increment")
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Quantity)

	updated, err = uc.AdjustQuantity(ctx, item.ID, "decrement")
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Quantity)
}

func TestAdjustQuantityFloorAtOne(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := uc.AddToCart(ctx, AddToCartInput{
		UserID: "user-1", ProductID: "product-1", Name: "Ring", Image: "r.jpg", Price: 10, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = uc.AdjustQuantity(ctx, item.ID, "decrement")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// The stored quantity is untouched after the rejected decrement.
	stored, err := uc.AdjustQuantity(ctx, item.ID, "increment")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Quantity)
}

func TestAdjustQuantityRejectsUnknownDirection(t *testing.T) {
	uc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := uc.AddToCart(ctx, AddToCartInput{
		UserID: "user-1", ProductID: "product-1", Name: "Ring", Image: "r.jpg", Price: 10, Quantity: 1,
	})
	require.NoError(t, err)

	_, err = uc.AdjustQuantity(ctx, item.ID, "double")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListForUserServesLiveProductImage(t *testing.T) {
	uc, _, productRepo := newCartFixture(t)
	ctx := context.Background()

	product := &entity.Product{Name: "Ring", Category: "rings", Description: "d", Price: 10, Image: "old.jpg", AuthorID: "admin"}
	require.NoError(t, productRepo.Create(ctx, product))

	_, err := uc.AddToCart(ctx, AddToCartInput{
		UserID: "user-1", ProductID: product.ID, Name: "Ring", Image: "old.jpg", Price: 10, Quantity: 1,
	})
	require.NoError(t, err)

	product.Image = "new.jpg"
	require.NoError(t, productRepo.Update(ctx, product))

	items, err := uc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "new.jpg", items[0].Image)
}

func TestClearRemovesOnlyThatUsersItems(t *testing.T) {
	uc, cartRepo, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: "user-1", ProductID: "product-1", Name: "A", Image: "a.jpg", Price: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, AddToCartInput{UserID: "user-2", ProductID: "product-1", Name: "A", Image: "a.jpg", Price: 1, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, "user-1"))

	mine, err := cartRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := cartRepo.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
