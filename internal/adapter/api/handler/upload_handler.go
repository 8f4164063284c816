package handler

import (
	"lumera/internal/usecase"
	"lumera/pkg/errors"
	"lumera/pkg/response"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
	}
}

func (h *UploadHandler) UploadImage(c echo.Context) error {
	return uploadImageFromBody(c, h.uploadUseCase)
}

type uploadImageRequest struct {
	Image string `json:"image"`
}

// uploadImageFromBody handles the shared base64 upload body used by the
// standalone upload route and the deal image route.
func uploadImageFromBody(c echo.Context, uc *usecase.UploadUseCase) error {
	var req uploadImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request payload", err))
	}

	if req.Image == "" {
		return response.Error(c, errors.BadRequest("No image provided", nil))
	}

	url, err := uc.UploadImage(c.Request().Context(), req.Image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"imageUrl": url,
	})
}
