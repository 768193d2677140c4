package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the rest of the codebase branches on
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeDuplicateDatabase   = "42P04"
	CodeUndefinedTable      = "42P01"
	CodeInvalidPassword     = "28P01"
	CodeInvalidCatalogName  = "3D000"
)

// ConnectionError is returned when a session cannot be established:
// bad credentials, unreachable host or a database that does not exist.
type ConnectionError struct {
	Host     string
	Database string
	Err      error
}

func (e *ConnectionError) Error() string {
	target := e.Host
	if e.Database != "" {
		target += "/" + e.Database
	}
	return fmt.Sprintf("connect to %s: %v", target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError is returned by the provisioner when a DDL statement fails
// for any reason other than the object already existing.
type SchemaError struct {
	Object string
	Code   string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("ensure %s (SQLSTATE %s): %v", e.Object, e.Code, e.Err)
	}
	return fmt.Sprintf("ensure %s: %v", e.Object, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// QueryError carries the server's error code and message verbatim.
type QueryError struct {
	Code    string
	Message string
	Err     error
}

func (e *QueryError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.Code)
	}
	return e.Message
}

func (e *QueryError) Unwrap() error { return e.Err }

// NewQueryError wraps err as a *QueryError, reusing it when err already is one.
func NewQueryError(err error) error {
	if err == nil {
		return nil
	}

	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &QueryError{Code: pgErr.Code, Message: pgErr.Message, Err: err}
	}
	return &QueryError{Message: err.Error(), Err: err}
}

// NewSchemaError wraps err as a *SchemaError for object.
func NewSchemaError(object string, err error) error {
	if err == nil {
		return nil
	}
	return &SchemaError{Object: object, Code: SQLState(err), Err: err}
}

// SQLState returns the server error code carried by err, or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return SQLState(err) == CodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return SQLState(err) == CodeForeignKeyViolation
}

func IsCheckViolation(err error) bool {
	return SQLState(err) == CodeCheckViolation
}
