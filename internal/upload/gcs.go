package upload

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gofrs/uuid/v5"
)

// GCS uploads images to a Google Cloud Storage bucket. Credentials come from
// Application Default Credentials.
type GCS struct {
	client     *storage.Client
	bucket     string
	publicBase string
}

func NewGCS(ctx context.Context, bucket, publicBase string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, publicBase: strings.TrimSuffix(publicBase, "/")}, nil
}

func (u *GCS) Upload(ctx context.Context, file *File) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	name := objectName(id, file.Name)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = file.ContentType
	if _, err := w.Write(file.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %q: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return u.publicBase + "/" + u.bucket + "/" + name, nil
}

func (u *GCS) Close() error {
	return u.client.Close()
}

// objectName keeps the file's base name under a unique prefix.
func objectName(id uuid.UUID, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}
	return "images/" + id.String() + "/" + base
}
