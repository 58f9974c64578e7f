// Package catalog turns object store listings into playable media lists and
// tracks which music folder is current.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidFolder is returned when a folder switch names an unknown key.
	ErrInvalidFolder = errors.New("invalid folder")

	// ErrStoreUnavailable is returned when the object store cannot produce a listing.
	ErrStoreUnavailable = errors.New("object store unavailable")
)

// Item is one playable object (a song or a video) as of list time.
//
// ID is a display token derived from Key and may collide between keys.
// Key is the identity: votes and lookups must use it.
type Item struct {
	ID   string `json:"id"   example:"5d1b0c7f3a2e9b41"`
	Name string `json:"name" example:"one.mp3"`
	URL  string `json:"url"  example:"https://bees-bucket.oss.example.com/music/Alpha/one.mp3?X-Amz-Expires=86400"`
	Key  string `json:"key"  example:"music/Alpha/one.mp3"`
}

// ItemID derives the display token for key: 64-bit xxhash as 16 hex digits.
func ItemID(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}

// ItemName returns the final path segment of key. Keys without a usable
// segment (no slash, or a trailing slash) fall back to the whole key.
func ItemName(key string) string {
	i := strings.LastIndex(key, "/")
	if i < 0 || i == len(key)-1 {
		return key
	}
	return key[i+1:]
}
