package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"teetime/internal/ports/output"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultLockTimeout bounds how long a unit of work waits for an event lock.
const DefaultLockTimeout = 5 * time.Second

var _ output.Store = (*Store)(nil)

// Store implements output.Store on a pgx pool. Units of work run at READ
// COMMITTED; per-event serialization comes from SELECT ... FOR UPDATE.
type Store struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, lockTimeout: DefaultLockTimeout}
}

type repositories struct {
	db DBTX
}

func (r repositories) Events() output.EventRepository           { return NewEventRepository(r.db) }
func (r repositories) Enrollments() output.EnrollmentRepository { return NewEnrollmentRepository(r.db) }

func (s *Store) Events() output.EventRepository           { return NewEventRepository(s.pool) }
func (s *Store) Enrollments() output.EnrollmentRepository { return NewEnrollmentRepository(s.pool) }

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx output.Repositories) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classify(fmt.Errorf("begin tx: %w", err))
	}
	// Rollback after Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}
	if err := fn(ctx, repositories{db: tx}); err != nil {
		return classify(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return classify(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}
