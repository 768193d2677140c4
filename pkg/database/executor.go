package database

import (
	"context"
	"fmt"
)

// Statement is one SQL statement with its positional ($1, $2, ...) arguments.
// Untrusted values always travel in Args, never inside SQL.
type Statement struct {
	SQL  string
	Args []any
}

func NewStatement(sql string, args ...any) Statement {
	return Statement{SQL: sql, Args: args}
}

// Execute runs a write statement and, when commit is set, commits it.
// On failure in non-autocommit mode the pending transaction is rolled back
// so the session stays usable.
func Execute(ctx context.Context, s Session, stmt Statement, commit bool) error {
	if _, err := s.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
		if !s.Autocommit() {
			if rbErr := s.Rollback(ctx); rbErr != nil {
				return fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
		return err
	}

	if commit {
		return s.Commit(ctx)
	}
	return nil
}

// Select runs a read statement and returns its cursor. The caller owns the
// cursor and must exhaust or close it.
func Select(ctx context.Context, q Querier, stmt Statement) (*Cursor, error) {
	return q.Query(ctx, stmt.SQL, stmt.Args...)
}
