package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resumeforge/internal/session"
)

// StateRepo is a Postgres-backed session store. It satisfies
// session.Store so deployments that want server-side persistence can
// swap it in for the default file store.
type StateRepo struct {
	pool *pgxpool.Pool
}

func NewStateRepo(pool *pgxpool.Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

func (r *StateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var record []byte
	err := r.pool.QueryRow(ctx,
		`SELECT record FROM resume_sessions WHERE key = $1`, key).Scan(&record)
	if err == pgx.ErrNoRows {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *StateRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO resume_sessions (key, record, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`,
		key, value)
	return err
}

func (r *StateRepo) Clear(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resume_sessions WHERE key = $1`, key)
	return err
}
