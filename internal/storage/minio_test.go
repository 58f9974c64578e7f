package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// With an explicit region minio-go signs locally, so no server is needed.
func newTestStorage(t *testing.T) *MinioStorage {
	t.Helper()
	s, err := NewMinioStorage("localhost:9000", "minioadmin", "minioadmin", "bees-bucket", "us-east-1", false)
	require.NoError(t, err)
	return s
}

func TestPresignedURLEmbedsExpiry(t *testing.T) {
	s := newTestStorage(t)

	raw, err := s.PresignedURL(context.Background(), "music/Alpha/one.mp3", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "/bees-bucket/music/Alpha/one.mp3", u.Path)
	require.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestPresignedURLClampsTTL(t *testing.T) {
	s := newTestStorage(t)

	raw, err := s.PresignedURL(context.Background(), "videos/a.mp4", 30*24*time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "604800", u.Query().Get("X-Amz-Expires"))
}
