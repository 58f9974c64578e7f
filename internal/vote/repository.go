// Package vote keeps like/dislike tallies per catalog item.
package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is a Postgres-backed counter store. Each counter is one row in
// vote_counters; a missing row is an absent counter.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Get returns the counter value and whether the counter exists.
func (r *Repository) Get(ctx context.Context, key string) (int64, bool, error) {
	var value int64
	err := r.db.QueryRow(ctx,
		`SELECT value FROM vote_counters WHERE key = $1`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get counter %q: %w", key, err)
	}
	return value, true, nil
}

// Increment adds one to the counter, creating it at 1, and returns the new value.
// The upsert is a single statement, so concurrent increments never overwrite each other.
func (r *Repository) Increment(ctx context.Context, key string) (int64, error) {
	var value int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO vote_counters (key, value) VALUES ($1, 1)
		 ON CONFLICT (key) DO UPDATE SET value = vote_counters.value + 1, updated_at = NOW()
		 RETURNING value`,
		key,
	).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("increment counter %q: %w", key, err)
	}
	return value, nil
}
