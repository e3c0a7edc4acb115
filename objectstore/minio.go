// Package objectstore keeps uploaded media files in a MinIO bucket.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL prefixes object URLs. Defaults to the endpoint.
	PublicURL string
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// New connects to MinIO and creates the bucket when it is missing.
func New(ctx context.Context, cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBase(cfg),
	}, nil
}

// Upload writes r under a fresh uuid name and returns its public URL.
func (s *MinioStore) Upload(ctx context.Context, r io.Reader, size int64, contentType, ext string) (string, error) {
	name := ObjectName(ext)
	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", name, err)
	}
	return s.publicURL + "/" + s.bucket + "/" + name, nil
}

// ObjectName is a random key keeping the original file extension.
func ObjectName(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return uuid.New().String() + ext
}

func publicBase(cfg Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint
}
