// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup;
// the MinIO implementation works with any S3-compatible provider (MinIO, Aliyun OSS, AWS S3).
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the object store cannot be reached or
// rejects the request.
var ErrUnavailable = errors.New("object store unavailable")

// Storage is the read side of the object store used by the media catalog.
type Storage interface {
	// List returns every object key under prefix, in the store's listing order.
	// Keys received before a failure are returned together with the error.
	List(ctx context.Context, prefix string) ([]string, error)
	// PresignedURL returns a GET URL for key that expires after ttl.
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	// Ping reports whether the configured bucket is reachable.
	Ping(ctx context.Context) error
}
