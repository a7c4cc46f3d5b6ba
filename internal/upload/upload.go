// Package upload stores receipt and routine images with an external blob
// host and returns their public URL.
package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/budget-planner/internal/config"
)

// ErrDisabled is returned when an image is supplied but no upload driver is
// configured.
var ErrDisabled = errors.New("image uploads are disabled")

// File is an image to upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file *File) (string, error)
}

// New builds the uploader selected by UPLOAD_DRIVER.
func New(ctx context.Context, env *config.Config) (Uploader, error) {
	switch env.UploadDriver {
	case config.UploadDriverImgBB:
		return NewImgBB(env.ImgBBEndpoint, env.ImgBBAPIKey, nil), nil
	case config.UploadDriverGCS:
		return NewGCS(ctx, env.GCSBucket, env.GCSPublicBaseURL)
	case config.UploadDriverNone, "":
		return Disabled{}, nil
	}
	return nil, fmt.Errorf("unknown upload driver %q", env.UploadDriver)
}

// Disabled rejects every upload.
type Disabled struct{}

func (Disabled) Upload(context.Context, *File) (string, error) {
	return "", ErrDisabled
}
