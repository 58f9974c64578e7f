package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SignFunc returns an access URL for key valid until now+ttl.
type SignFunc func(ctx context.Context, key string, ttl time.Duration) (string, error)

// Build projects a raw listing onto Items.
//
// Keys are kept when they end in suffix, compared case-insensitively, and
// emitted in input order. Each kept key is signed with sign; a key that fails
// to sign is dropped and its error joined into the returned error, so callers
// always get every item that could be rendered.
func Build(ctx context.Context, keys []string, suffix string, ttl time.Duration, sign SignFunc) ([]Item, error) {
	suffix = strings.ToLower(suffix)
	items := make([]Item, 0, len(keys))

	var errs []error
	for _, key := range keys {
		if !strings.HasSuffix(strings.ToLower(key), suffix) {
			continue
		}

		u, err := sign(ctx, key, ttl)
		if err != nil {
			errs = append(errs, fmt.Errorf("sign %q: %w", key, err))
			continue
		}

		items = append(items, Item{
			ID:   ItemID(key),
			Name: ItemName(key),
			URL:  u,
			Key:  key,
		})
	}

	return items, errors.Join(errs...)
}
