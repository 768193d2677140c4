package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is implemented by Conn and Pool
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (*Cursor, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session is a Querier with commit control. On an autocommit session
// Commit and Rollback are no-ops.
type Session interface {
	Querier
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Autocommit() bool
}

var (
	_ Session = (*Conn)(nil)
	_ Session = (*Pool)(nil)
)
