package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").
		Where("email", "==", email).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query)
}

func (r *firestoreOrderRepository) collect(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	iter := query.Documents(ctx)

	orders := []*entity.Order{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}
		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id, newStatus string) error {
	_, err := r.client.Collection("orders").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to update order status", err)
	}

	return nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("orders").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete order", err)
	}

	return nil
}
