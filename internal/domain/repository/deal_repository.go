package repository

import (
	"context"

	"lumera/internal/domain/entity"
)

type DealRepository interface {
	// Get returns (nil, nil) when no deal has been published yet.
	Get(ctx context.Context) (*entity.Deal, error)
	// Set overwrites the singleton deal record.
	Set(ctx context.Context, deal *entity.Deal) error
}
