package vote

import (
	"context"
	"errors"
	"fmt"
)

const (
	likesPrefix    = "likes:"
	dislikesPrefix = "dislikes:"
)

// ErrStoreUnavailable is returned when the counter store fails. Votes are
// never reported as zero on failure.
var ErrStoreUnavailable = errors.New("counter store unavailable")

// CounterStore is a string-keyed counter with atomic increment.
type CounterStore interface {
	// Get returns the value and false when the counter has never been incremented.
	Get(ctx context.Context, key string) (int64, bool, error)
	// Increment atomically adds one and returns the new value.
	Increment(ctx context.Context, key string) (int64, error)
}

// Votes is the like/dislike pair for one item.
type Votes struct {
	Likes    int64 `json:"likes"    example:"12"`
	Dislikes int64 `json:"dislikes" example:"3"`
}

// Service contains the vote tracking logic. Items are identified by their
// storage key, not the display id.
type Service struct {
	store CounterStore
}

// NewService creates a new vote Service.
func NewService(store CounterStore) *Service {
	return &Service{store: store}
}

// Get returns the tallies for itemKey; counters never written read as zero.
func (s *Service) Get(ctx context.Context, itemKey string) (Votes, error) {
	likes, err := s.read(ctx, likesPrefix+itemKey)
	if err != nil {
		return Votes{}, err
	}
	dislikes, err := s.read(ctx, dislikesPrefix+itemKey)
	if err != nil {
		return Votes{}, err
	}
	return Votes{Likes: likes, Dislikes: dislikes}, nil
}

// Like records one like and returns the fresh tallies.
func (s *Service) Like(ctx context.Context, itemKey string) (Votes, error) {
	return s.bump(ctx, likesPrefix, itemKey)
}

// Dislike records one dislike and returns the fresh tallies.
func (s *Service) Dislike(ctx context.Context, itemKey string) (Votes, error) {
	return s.bump(ctx, dislikesPrefix, itemKey)
}

func (s *Service) bump(ctx context.Context, prefix, itemKey string) (Votes, error) {
	if _, err := s.store.Increment(ctx, prefix+itemKey); err != nil {
		return Votes{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return s.Get(ctx, itemKey)
}

func (s *Service) read(ctx context.Context, key string) (int64, error) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return 0, nil
	}
	return v, nil
}
