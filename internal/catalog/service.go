package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ObjectStore is the object store capability the catalog needs.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Service lists one kind of media. The audio variant resolves its prefix
// through a FolderSelector on every call; the video variant uses a fixed prefix.
// Nothing is cached: each List recomputes the listing and re-signs every URL.
type Service struct {
	store   ObjectStore
	folders *FolderSelector
	prefix  string
	suffix  string
	ttl     time.Duration
	log     *slog.Logger
}

// NewAudioService lists "<root><label of current folder>/" for .mp3 objects.
func NewAudioService(store ObjectStore, folders *FolderSelector, root string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		store:   store,
		folders: folders,
		prefix:  root,
		suffix:  ".mp3",
		ttl:     ttl,
		log:     log.With("catalog", "audio"),
	}
}

// NewVideoService lists prefix for .mp4 objects.
func NewVideoService(store ObjectStore, prefix string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		store:  store,
		prefix: prefix,
		suffix: ".mp4",
		ttl:    ttl,
		log:    log.With("catalog", "video"),
	}
}

// List returns the current items in store order.
//
// A listing that fails before yielding any key, or whose every candidate fails
// to sign, is reported as ErrStoreUnavailable. Partial failures are logged and
// the rendered items returned.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	prefix := s.listPrefix()

	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		if len(keys) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		s.log.Warn("partial listing", "prefix", prefix, "keys", len(keys), "error", err)
	}

	items, err := Build(ctx, keys, s.suffix, s.ttl, s.store.PresignedURL)
	if err != nil {
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		s.log.Warn("skipped unsignable items", "prefix", prefix, "items", len(items), "error", err)
	}

	s.log.Debug("listed catalog", "prefix", prefix, "keys", len(keys), "items", len(items))
	return items, nil
}

// SetFolder switches the current folder. The video catalog has no folders,
// so every key is invalid there.
func (s *Service) SetFolder(key string) (string, error) {
	if s.folders == nil {
		return "", ErrInvalidFolder
	}
	current, err := s.folders.SwitchTo(key)
	if err != nil {
		s.log.Warn("rejected folder switch", "folder", key, "current", current)
		return current, err
	}
	s.log.Info("switched folder", "folder", current)
	return current, nil
}

// Folders returns the current folder key and the full folder set.
// Both are empty for the video catalog.
func (s *Service) Folders() (string, []Folder) {
	if s.folders == nil {
		return "", nil
	}
	return s.folders.Current(), s.folders.Folders()
}

func (s *Service) listPrefix() string {
	if s.folders == nil {
		return s.prefix
	}
	_, label := s.folders.CurrentLabel()
	return s.prefix + label + "/"
}
