package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ecomly/ecomly-api/internal/domain/model"
)

// ImageStorage stores entity images in an S3-compatible bucket.
type ImageStorage interface {
	Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (model.Image, error)
	Remove(ctx context.Context, key string) error
}

// StorageConfig holds object storage settings.
type StorageConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// PublicBaseURL is the base used to build image URLs served to clients.
	PublicBaseURL string
}

// S3Storage implements ImageStorage over a MinIO client, which speaks to
// any S3-compatible endpoint.
type S3Storage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewS3Storage creates a storage client for the configured bucket.
func NewS3Storage(cfg StorageConfig) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}
	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the object under a timestamped key and returns its
// reference. Spaces in the original filename become dashes.
func (s *S3Storage) Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (model.Image, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strings.ReplaceAll(filename, " ", "-"))

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: "inline",
	})
	if err != nil {
		return model.Image{}, fmt.Errorf("uploading image %q: %w", key, err)
	}

	return model.Image{
		Key: key,
		URL: s.baseURL + "/" + key,
	}, nil
}

// Remove deletes the object with the given key.
func (s *S3Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing image %q: %w", key, err)
	}
	return nil
}
