package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

// cartDocID derives the document key from the (user, product) pair, which
// makes "at most one line per pair" structural.
func cartDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreCartRepository) AddOrIncrement(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	docRef := r.client.Collection("cart_items").Doc(cartDocID(item.UserID, item.ProductID))

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			now := time.Now()
			item.ID = docRef.ID
			item.CreatedAt = now
			item.UpdatedAt = now
			return tx.Set(docRef, item)
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "quantity", Value: firestore.Increment(item.Quantity)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to upsert cart item", err)
	}

	return r.GetByID(ctx, docRef.ID)
}

func (r *firestoreCartRepository) GetByID(ctx context.Context, id string) (*entity.CartItem, error) {
	doc, err := r.client.Collection("cart_items").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Cart item", err)
		}
		return nil, errors.Internal("Failed to get cart item", err)
	}

	var item entity.CartItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse cart item data", err)
	}

	return &item, nil
}

func (r *firestoreCartRepository) Update(ctx context.Context, item *entity.CartItem) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("cart_items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to update cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("cart_items").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) DeleteByUser(ctx context.Context, userID string) error {
	docs, err := r.client.Collection("cart_items").Where("userId", "==", userID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Internal("Failed to query cart items for deletion", err)
	}

	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to clear cart", err)
		}
	}

	return nil
}

func (r *firestoreCartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	iter := r.client.Collection("cart_items").Where("userId", "==", userID).Documents(ctx)

	items := []*entity.CartItem{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list cart items", err)
		}
		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse cart item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
