// Package storage implements the blob-store uploader on MinIO (or any
// S3-compatible endpoint). Uploads are memory-buffered and go straight to the
// remote store; nothing is written to local disk.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/storefront/catalog-api/internal/api/metrics"
	"github.com/storefront/catalog-api/internal/core/ports"
)

// Config captures the settings for the MinIO client and target bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL overrides the URL prefix of uploaded objects. When empty,
	// URLs are derived from Endpoint and Bucket.
	PublicBaseURL string
}

// NewClient builds a MinIO client from cfg.
func NewClient(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return client, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("make bucket: %w", err)
		}
	}
	return nil
}

// ImageStore uploads images and returns their public URLs.
type ImageStore struct {
	client *minio.Client
	cfg    Config
}

func NewImageStore(client *minio.Client, cfg Config) *ImageStore {
	return &ImageStore{client: client, cfg: cfg}
}

// Upload stores the image under <folder>/<unix-nano>_<filename> and returns
// its public URL. Object keys carry a timestamp prefix so repeated uploads of
// the same filename never collide.
func (s *ImageStore) Upload(ctx context.Context, folder string, img ports.ImageUpload) (string, error) {
	key := fmt.Sprintf("%s/%d_%s", folder, time.Now().UnixNano(), img.Filename)

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key,
		bytes.NewReader(img.Data), int64(len(img.Data)),
		minio.PutObjectOptions{ContentType: img.ContentType})
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("failure").Inc()
		return "", fmt.Errorf("put object: %w", err)
	}

	metrics.ImageUploadsTotal.WithLabelValues("success").Inc()
	return s.publicURL(key), nil
}

func (s *ImageStore) publicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.cfg.PublicBaseURL, key)
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, key)
}
