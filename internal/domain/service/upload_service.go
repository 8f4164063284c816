package service

import (
	"context"
)

// Uploader is the upload gateway contract: accept encoded media, return a
// durable URL or fail.
type Uploader interface {
	UploadImage(ctx context.Context, data []byte) (string, error)
}
