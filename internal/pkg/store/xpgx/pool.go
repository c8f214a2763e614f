// Package xpgx wraps a pgx connection pool so the store can work in
// squirrel sqlizers and run multi-statement batches with one transaction
// boundary.
package xpgx

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/astoulakis/onboard/internal/pkg/logger"
)

type Pool interface {
	Queryx(ctx context.Context, q sq.Sqlizer) (pgx.Rows, error)
	QueryRowx(ctx context.Context, q sq.Sqlizer) (pgx.Row, error)
	// RunBatch is the only place transaction boundaries exist: one pooled
	// connection, BEGIN, every statement in order, COMMIT on full success
	// or ROLLBACK on the first failure. The connection is released on
	// every exit path.
	RunBatch(ctx context.Context, b *Batch) error
	Close()
}

type pool struct {
	raw *pgxpool.Pool
}

// NewPool dials the database and pings it with exponential backoff, so a
// restart does not lose a race against the database coming up.
func NewPool(ctx context.Context, dsn string) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	raw, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	err = backoff.Retry(func() error {
		if err := raw.Ping(ctx); err != nil {
			logger.Warnf(ctx, "database not ready yet: %s", err.Error())
			return err
		}
		return nil
	}, backoff.WithContext(bo, ctx))
	if err != nil {
		raw.Close()
		return nil, err
	}

	return &pool{raw: raw}, nil
}

func (p *pool) Queryx(ctx context.Context, q sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return p.raw.Query(ctx, sql, args...)
}

func (p *pool) QueryRowx(ctx context.Context, q sq.Sqlizer) (pgx.Row, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return p.raw.QueryRow(ctx, sql, args...), nil
}

// batchTx is the slice of pgx.Tx that batch execution needs.
type batchTx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

func (p *pool) RunBatch(ctx context.Context, b *Batch) error {
	conn, err := p.raw.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return err
	}

	return runBatchTx(ctx, tx, b)
}

func runBatchTx(ctx context.Context, tx batchTx, b *Batch) error {
	// Rollback after a successful commit is a harmless no-op; this keeps
	// every early return covered.
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range b.stmts {
		sql, args, err := stmt.query.ToSql()
		if err != nil {
			return err
		}

		if stmt.returnID != nil {
			if err := tx.QueryRow(ctx, sql, args...).Scan(stmt.returnID); err != nil {
				logger.Errorf(ctx, "batch statement %d failed: %s", i, err.Error())
				return err
			}
			continue
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			logger.Errorf(ctx, "batch statement %d failed: %s", i, err.Error())
			return err
		}
		if stmt.guarded && tag.RowsAffected() != stmt.expect {
			return stmt.mismatchErr
		}
	}

	return tx.Commit(ctx)
}

func (p *pool) Close() {
	p.raw.Close()
}
