// Package postgres provides the pgx-backed implementation of every storage
// contract. All read-modify-write units (view counters, toggles, profile
// edits) are single SQL statements so per-record atomicity is the
// database's, not a process-level lock.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// Compile-time checks that Store satisfies every storage contract.
var (
	_ storage.UserStore        = (*Store)(nil)
	_ storage.PortfolioStore   = (*Store)(nil)
	_ storage.CalculationStore = (*Store)(nil)
	_ storage.BoardStore       = (*Store)(nil)
	_ storage.MenuStore        = (*Store)(nil)
	_ storage.RoleStore        = (*Store)(nil)
)

// Store provides Postgres-backed persistence for all aggregates.
type Store struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// Options tune store behavior beyond the connection string.
type Options struct {
	// Timeout bounds every store call; zero disables the bound.
	Timeout time.Duration

	// SeedReferenceData inserts the default roles and menu tree after
	// migrating. Demo accounts are never seeded.
	SeedReferenceData bool
}

// New connects, runs migrations, and optionally seeds reference data.
func New(ctx context.Context, databaseURL string, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool, timeout: opts.Timeout}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if opts.SeedReferenceData {
		if err := s.seedReferenceData(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// opCtx derives the bounded context every store call runs under.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// mapErr translates driver failures into the apperr taxonomy.
func mapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, apperr.ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w: %v", op, apperr.ErrStorageUnavailable, err)
}
