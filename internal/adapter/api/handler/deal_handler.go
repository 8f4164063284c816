package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type DealHandler struct {
	dealUseCase   *usecase.DealUseCase
	uploadUseCase *usecase.UploadUseCase
}

func NewDealHandler(dealUseCase *usecase.DealUseCase, uploadUseCase *usecase.UploadUseCase) *DealHandler {
	return &DealHandler{
		dealUseCase:   dealUseCase,
		uploadUseCase: uploadUseCase,
	}
}

type upsertDealRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Discount    float64 `json:"discount" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	Image       string  `json:"image"`
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	deal, err := h.dealUseCase.GetCurrent(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, deal)
}

func (h *DealHandler) UpsertDeal(c echo.Context) error {
	var req upsertDealRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	deal, err := h.dealUseCase.Upsert(c.Request().Context(), usecase.UpsertDealInput{
		Title:       req.Title,
		Description: req.Description,
		Discount:    req.Discount,
		EndDate:     req.EndDate,
		Image:       req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, deal)
}

func (h *DealHandler) UploadDealImage(c echo.Context) error {
	return uploadImageFromBody(c, h.uploadUseCase)
}
