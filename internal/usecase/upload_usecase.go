package usecase

import (
	"context"
	"encoding/base64"
	"strings"

	"lumera/internal/domain/service"
	"lumera/pkg/errors"
)

type UploadUseCase struct {
	uploader service.Uploader
}

func NewUploadUseCase(uploader service.Uploader) *UploadUseCase {
	return &UploadUseCase{
		uploader: uploader,
	}
}

// UploadImage accepts a base64 payload (with or without a data-URI
// prefix) and returns the durable URL from the upload gateway.
func (uc *UploadUseCase) UploadImage(ctx context.Context, encoded string) (string, error) {
	data, err := decodeImagePayload(encoded)
	if err != nil {
		return "", err
	}

	url, err := uc.uploader.UploadImage(ctx, data)
	if err != nil {
		return "", errors.Internal("Image upload failed", err)
	}

	return url, nil
}

func decodeImagePayload(encoded string) ([]byte, error) {
	// Strip a "data:image/png;base64," style prefix when present.
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.BadRequest("image must be base64 encoded", err)
	}
	return data, nil
}
