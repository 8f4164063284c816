package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/pkg/errors"
)

// The deal is a singleton: every read and write targets this one document.
const dealDocID = "current"

type firestoreDealRepository struct {
	client *firestore.Client
}

func NewFirestoreDealRepository(client *firestore.Client) repository.DealRepository {
	return &firestoreDealRepository{
		client: client,
	}
}

func (r *firestoreDealRepository) Get(ctx context.Context) (*entity.Deal, error) {
	doc, err := r.client.Collection("deals").Doc(dealDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get deal", err)
	}

	var deal entity.Deal
	if err := doc.DataTo(&deal); err != nil {
		return nil, errors.Internal("Failed to parse deal data", err)
	}

	return &deal, nil
}

func (r *firestoreDealRepository) Set(ctx context.Context, deal *entity.Deal) error {
	deal.UpdatedAt = time.Now()

	_, err := r.client.Collection("deals").Doc(dealDocID).Set(ctx, deal)
	if err != nil {
		return errors.Internal("Failed to save deal", err)
	}

	return nil
}
