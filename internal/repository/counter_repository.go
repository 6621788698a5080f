package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CounterRepository issues sequence numbers. The single-statement upsert is
// the atomicity guarantee: concurrent callers for the same key serialize on
// the row and each observes a distinct value.
type CounterRepository struct {
	pool *pgxpool.Pool
}

// NewCounterRepository creates a new CounterRepository.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// Next atomically increments and returns the counter for key, starting at 1.
func (r *CounterRepository) Next(ctx context.Context, key string) (int64, error) {
	var seq int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO counters (key, seq) VALUES ($1, 1)
		 ON CONFLICT (key) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		key,
	).Scan(&seq)
	return seq, err
}
