// Package storage provides the object-storage backed image store used when
// publishing news. Uploaded objects are never deleted: replacing or removing
// a news item leaves its previous image behind (known gap, kept consistent
// across create/update/delete).
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// MaxImageSize is the upper bound on accepted image payloads (2 MB).
const MaxImageSize = 2 << 20

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Config carries the MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ImageStore uploads news images to a MinIO bucket and returns their
// public URL. Extension and size are validated before any network call.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewImageStore(cfg Config) (*ImageStore, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("image store: endpoint is required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("image store: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("image store: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &ImageStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
	}, nil
}

// EnsureBucket creates the configured bucket when it does not exist yet.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("image store: %w", err)
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload validates and stores an image, returning its stable URL. Only
// .jpg, .png and .jpeg are accepted and payloads must stay under 2 MB.
func (s *ImageStore) Upload(ctx context.Context, filename string, content io.Reader, size int64) (string, error) {
	contentType, err := ValidateImage(filename, size)
	if err != nil {
		return "", err
	}

	key, err := objectKey(filename)
	if err != nil {
		return "", fmt.Errorf("image store: %w", err)
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, content, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("image store: put %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}

// Ping verifies the backend is reachable (used by the readiness probe).
func (s *ImageStore) Ping(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("image store: %w", err)
	}
	return nil
}

// ValidateImage checks extension and size, returning the content type for
// an acceptable payload.
func ValidateImage(filename string, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", domain.ErrImageTypeNotAllowed
	}
	if size >= MaxImageSize {
		return "", domain.ErrImageTooLarge
	}
	return contentType, nil
}

// objectKey builds a collision-free key, keeping the original extension.
func objectKey(filename string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b) + strings.ToLower(filepath.Ext(filename)), nil
}
