package usecase

import (
	"context"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/repository"
	"lumera/internal/domain/service"
	"lumera/pkg/errors"
)

type DealUseCase struct {
	dealRepo repository.DealRepository
	uploader service.Uploader
}

func NewDealUseCase(dealRepo repository.DealRepository, uploader service.Uploader) *DealUseCase {
	return &DealUseCase{
		dealRepo: dealRepo,
		uploader: uploader,
	}
}

type UpsertDealInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
	EndDate     string  `json:"endDate"`
	Image       string  `json:"image"`
}

// GetCurrent returns the singleton deal, or nil when none was published.
func (uc *DealUseCase) GetCurrent(ctx context.Context) (*entity.Deal, error) {
	return uc.dealRepo.Get(ctx)
}

// Upsert overwrites the singleton deal. A new image, when provided, goes
// through the upload gateway first; otherwise the stored image URL is
// carried over.
func (uc *DealUseCase) Upsert(ctx context.Context, input UpsertDealInput) (*entity.Deal, error) {
	if input.Title == "" || input.Description == "" || input.EndDate == "" {
		return nil, errors.BadRequest("title, description and endDate are required", nil)
	}

	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, errors.BadRequest("endDate must be a valid date", err)
	}

	deal, err := uc.dealRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		deal = &entity.Deal{}
	}

	if input.Image != "" {
		data, err := decodeImagePayload(input.Image)
		if err != nil {
			return nil, err
		}
		url, err := uc.uploader.UploadImage(ctx, data)
		if err != nil {
			return nil, errors.Internal("Failed to upload deal image", err)
		}
		deal.ImageURL = url
	}

	deal.Title = input.Title
	deal.Description = input.Description
	deal.Discount = input.Discount
	deal.EndDate = endDate

	if err := uc.dealRepo.Set(ctx, deal); err != nil {
		return nil, err
	}

	return deal, nil
}
