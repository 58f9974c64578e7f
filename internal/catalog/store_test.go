package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

var errOffline = errors.New("connection refused")

// memStore is an in-memory ObjectStore. Keys are returned in insertion order.
type memStore struct {
	mu       sync.Mutex
	keys     []string
	listErr  error
	partial  int // keys returned before listErr; zero returns none
	badSigns map[string]bool
	listed   []string
	signed   int
}

func newMemStore(keys ...string) *memStore {
	return &memStore{keys: keys, badSigns: map[string]bool{}}
}

func (m *memStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listed = append(m.listed, prefix)

	var out []string
	for _, k := range m.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	if m.listErr != nil {
		if m.partial < len(out) {
			out = out[:m.partial]
		}
		return out, m.listErr
	}
	return out, nil
}

func (m *memStore) PresignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.badSigns[key] {
		return "", errOffline
	}
	m.signed++
	return fmt.Sprintf("https://store.test/%s?expires=%d&n=%d", key, int(ttl.Seconds()), m.signed), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
