package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions configures the autocommit pool used by the HTTP API.
type PoolOptions struct {
	Options
	MaxConns int32
}

// Pool wraps pgxpool and reports errors with the same taxonomy as Conn.
// Every statement runs in autocommit mode.
type Pool struct {
	pool *pgxpool.Pool
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, NewQueryError(err)
	}
	return tag, nil
}

func (p *Pool) Query(ctx context.Context, sql string, args ...any) (*Cursor, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, NewQueryError(err)
	}
	return newCursor(rows), nil
}

func (p *Pool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return row{row: p.pool.QueryRow(ctx, sql, args...)}
}

func (p *Pool) Commit(context.Context) error   { return nil }
func (p *Pool) Rollback(context.Context) error { return nil }
func (p *Pool) Autocommit() bool               { return true }

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Close() {
	p.pool.Close()
}

// InitPool creates the connection pool and checks it can reach the server
func InitPool(ctx context.Context, opts PoolOptions) (*Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(opts.connString())
	if err != nil {
		return nil, &ConnectionError{Host: opts.Host, Database: opts.Database, Err: fmt.Errorf("parse pool config: %w", err)}
	}

	if opts.MaxConns > 0 {
		poolConfig.MaxConns = opts.MaxConns
	}
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, &ConnectionError{Host: opts.Host, Database: opts.Database, Err: fmt.Errorf("create connection pool: %w", err)}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, &ConnectionError{Host: opts.Host, Database: opts.Database, Err: fmt.Errorf("ping database failed: %w", err)}
	}

	return &Pool{pool: pool}, nil
}
