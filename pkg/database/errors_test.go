package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestNewQueryError(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: CodeForeignKeyViolation, Message: `insert or update on table "ratings" violates foreign key constraint`}
	plain := errors.New("conn busy")

	tt := []struct {
		name     string
		err      error
		wantNil  bool
		wantCode string
		wantMsg  string
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "server error", err: fkErr, wantCode: CodeForeignKeyViolation, wantMsg: fkErr.Message},
		{name: "wrapped server error", err: fmt.Errorf("insert: %w", fkErr), wantCode: CodeForeignKeyViolation, wantMsg: fkErr.Message},
		{name: "client error", err: plain, wantMsg: "conn busy"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := NewQueryError(tc.err)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}

			var qe *QueryError
			if !errors.As(err, &qe) {
				t.Fatalf("expected *QueryError, got %T", err)
			}
			if qe.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", qe.Code, tc.wantCode)
			}
			if qe.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", qe.Message, tc.wantMsg)
			}
			if !errors.Is(err, tc.err) {
				t.Errorf("expected the original error to stay reachable")
			}
		})
	}
}

func TestNewQueryErrorKeepsExisting(t *testing.T) {
	t.Parallel()

	first := NewQueryError(&pgconn.PgError{Code: CodeUniqueViolation, Message: "duplicate key"})
	again := NewQueryError(fmt.Errorf("create rating: %w", first))

	var qe *QueryError
	if !errors.As(again, &qe) || qe.Code != CodeUniqueViolation {
		t.Fatalf("expected unique violation to survive re-wrapping, got %v", again)
	}
}

func TestClassifiers(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name   string
		err    error
		unique bool
		fk     bool
		check  bool
	}{
		{name: "unique", err: &pgconn.PgError{Code: CodeUniqueViolation}, unique: true},
		{name: "foreign key", err: NewQueryError(&pgconn.PgError{Code: CodeForeignKeyViolation}), fk: true},
		{name: "check", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: CodeCheckViolation}), check: true},
		{name: "plain", err: errors.New("boom")},
		{name: "nil", err: nil},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := IsUniqueViolation(tc.err); got != tc.unique {
				t.Errorf("IsUniqueViolation = %v, want %v", got, tc.unique)
			}
			if got := IsForeignKeyViolation(tc.err); got != tc.fk {
				t.Errorf("IsForeignKeyViolation = %v, want %v", got, tc.fk)
			}
			if got := IsCheckViolation(tc.err); got != tc.check {
				t.Errorf("IsCheckViolation = %v, want %v", got, tc.check)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	denied := &pgconn.PgError{Code: "42501", Message: "permission denied to create database"}

	tt := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "connection with database",
			err:  &ConnectionError{Host: "localhost", Database: "online_movie_rating", Err: errors.New("refused")},
			want: "connect to localhost/online_movie_rating: refused",
		},
		{
			name: "connection without database",
			err:  &ConnectionError{Host: "localhost", Err: errors.New("refused")},
			want: "connect to localhost: refused",
		},
		{
			name: "schema with code",
			err:  NewSchemaError("database online_movie_rating", denied),
			want: "ensure database online_movie_rating (SQLSTATE 42501): " + denied.Error(),
		},
		{
			name: "query with code",
			err:  NewQueryError(denied),
			want: "permission denied to create database (SQLSTATE 42501)",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}
