package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"

	"github.com/google/uuid"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	iter := r.client.Collection("reviews").Where("productId", "==", productID).Documents(ctx)

	reviews := []*entity.Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list reviews", err)
		}
		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *firestoreReviewRepository) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	docs, err := r.client.Collection("reviews").Where("productId", "==", productID).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to query reviews for deletion", err)
	}

	deleted := 0
	for _, doc := range docs {
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to delete review", err)
		}
		deleted++
	}

	return deleted, nil
}
