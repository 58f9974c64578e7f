package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3 caps presigned URLs at seven days.
const maxPresignTTL = 7 * 24 * time.Hour

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// Pointing STORAGE_ENDPOINT at another S3-compatible provider needs no code changes.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a MinIO client for an existing bucket. The catalog
// only reads, so the bucket is never created or re-policied here.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket, region string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// List walks the full prefix recursively; minio-go follows continuation
// tokens itself, so the result is never silently truncated.
func (s *MinioStorage) List(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return keys, fmt.Errorf("%w: list %q: %v", ErrUnavailable, prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// PresignedURL signs a GET for key valid until now+ttl.
func (s *MinioStorage) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if ttl > maxPresignTTL {
		ttl = maxPresignTTL
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%w: presign %q: %v", ErrUnavailable, key, err)
	}
	return u.String(), nil
}

// Ping checks that the bucket exists and credentials are accepted.
func (s *MinioStorage) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("%w: check bucket: %v", ErrUnavailable, err)
	}
	if !exists {
		return fmt.Errorf("%w: bucket %q does not exist", ErrUnavailable, s.bucket)
	}
	return nil
}
