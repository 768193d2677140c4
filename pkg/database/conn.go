package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	DefaultPort     = "5432"
	DefaultDatabase = "postgres"
)

// ErrTxInProgress is returned by ExecImmediate while a transaction is open.
var ErrTxInProgress = errors.New("transaction in progress, commit or rollback first")

// ErrConnClosed is returned by every operation on a closed Conn.
var ErrConnClosed = errors.New("connection is closed")

// Options describes a single session. Password never leaves this struct
// except through the connection string handed to pgx.
type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	// Database selects the target database at connection time. Empty
	// means the server's maintenance database.
	Database       string
	Autocommit     bool
	ConnectTimeout time.Duration
	SSLMode        string
}

func (o Options) database() string {
	if o.Database == "" {
		return DefaultDatabase
	}
	return o.Database
}

// connString builds a postgres:// URL so credentials containing spaces or
// quotes survive without manual escaping.
func (o Options) connString() string {
	port := o.Port
	if port == "" {
		port = DefaultPort
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.User, o.Password),
		Host:   net.JoinHostPort(o.Host, port),
		Path:   "/" + o.database(),
	}

	q := url.Values{}
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	if o.ConnectTimeout > 0 {
		secs := int(o.ConnectTimeout.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// querier is what both a pgx connection and a pgx transaction provide
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Driver is the subset of *pgx.Conn a Conn depends on.
type Driver interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Conn owns exactly one server session. It is not safe for concurrent use.
//
// In non-autocommit mode the first statement opens a transaction which stays
// open until Commit or Rollback, so writes are invisible to other sessions
// until committed.
type Conn struct {
	ID uuid.UUID

	drv        Driver
	tx         pgx.Tx
	autocommit bool
	closed     bool
	log        *zap.Logger
}

// Connect opens one authenticated session described by opts.
func Connect(ctx context.Context, opts Options, log *zap.Logger) (*Conn, error) {
	if strings.TrimSpace(opts.Host) == "" {
		return nil, &ConnectionError{Database: opts.Database, Err: errors.New("host is required")}
	}

	config, err := pgx.ParseConfig(opts.connString())
	if err != nil {
		return nil, &ConnectionError{Host: opts.Host, Database: opts.Database, Err: fmt.Errorf("parse config: %w", err)}
	}

	pgxConn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		log.Warn("Failed to connect to database",
			zap.String("host", opts.Host),
			zap.String("database", opts.database()),
			zap.String("user", opts.User),
			zap.String("sqlstate", SQLState(err)),
		)
		return nil, &ConnectionError{Host: opts.Host, Database: opts.Database, Err: err}
	}

	conn := NewConn(pgxConn, opts.Autocommit, log)
	conn.log.Info("Database connected",
		zap.String("host", opts.Host),
		zap.String("database", opts.database()),
		zap.Bool("autocommit", opts.Autocommit),
	)

	return conn, nil
}

// NewConn wraps an already established driver session.
func NewConn(drv Driver, autocommit bool, log *zap.Logger) *Conn {
	id := uuid.New()
	return &Conn{
		ID:         id,
		drv:        drv,
		autocommit: autocommit,
		log:        log.With(zap.String("component", "conn"), zap.String("session_id", id.String())),
	}
}

// Autocommit reports whether every statement is committed on its own.
func (c *Conn) Autocommit() bool { return c.autocommit }

// InTransaction reports whether uncommitted work is pending.
func (c *Conn) InTransaction() bool { return c.tx != nil }

func (c *Conn) target(ctx context.Context) (querier, error) {
	if c.closed {
		return nil, &QueryError{Message: ErrConnClosed.Error(), Err: ErrConnClosed}
	}
	if c.autocommit {
		return c.drv, nil
	}
	if c.tx == nil {
		tx, err := c.drv.Begin(ctx)
		if err != nil {
			return nil, NewQueryError(fmt.Errorf("begin transaction: %w", err))
		}
		c.tx = tx
	}
	return c.tx, nil
}

// Exec runs a statement that returns no rows.
func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q, err := c.target(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	c.log.Debug("Exec", zap.String("sql", compactSQL(sql)), zap.Int("args", len(args)))

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, NewQueryError(err)
	}
	return tag, nil
}

// ExecImmediate runs sql outside any transaction block. PostgreSQL refuses
// some statements (CREATE DATABASE) inside one.
func (c *Conn) ExecImmediate(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if c.closed {
		return pgconn.CommandTag{}, &QueryError{Message: ErrConnClosed.Error(), Err: ErrConnClosed}
	}
	if c.tx != nil {
		return pgconn.CommandTag{}, &QueryError{Message: ErrTxInProgress.Error(), Err: ErrTxInProgress}
	}

	c.log.Debug("Exec immediate", zap.String("sql", compactSQL(sql)))

	tag, err := c.drv.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, NewQueryError(err)
	}
	return tag, nil
}

// Query runs a read statement and returns a lazy, single-pass cursor.
func (c *Conn) Query(ctx context.Context, sql string, args ...any) (*Cursor, error) {
	q, err := c.target(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Debug("Query", zap.String("sql", compactSQL(sql)), zap.Int("args", len(args)))

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, NewQueryError(err)
	}
	return newCursor(rows), nil
}

// QueryRow runs a statement expected to return at most one row.
func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q, err := c.target(ctx)
	if err != nil {
		return errRow{err: err}
	}

	c.log.Debug("QueryRow", zap.String("sql", compactSQL(sql)), zap.Int("args", len(args)))

	return row{row: q.QueryRow(ctx, sql, args...)}
}

// Commit makes pending work visible. It is a no-op when nothing is pending.
func (c *Conn) Commit(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil

	if err := tx.Commit(ctx); err != nil {
		c.log.Error("Failed to commit", zap.Error(err))
		return NewQueryError(fmt.Errorf("commit: %w", err))
	}

	c.log.Debug("Transaction committed")
	return nil
}

// Rollback discards pending work. It is a no-op when nothing is pending.
func (c *Conn) Rollback(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	tx := c.tx
	c.tx = nil

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		c.log.Error("Failed to rollback", zap.Error(err))
		return NewQueryError(fmt.Errorf("rollback: %w", err))
	}

	c.log.Debug("Transaction rolled back")
	return nil
}

// Ping checks the session is still alive.
func (c *Conn) Ping(ctx context.Context) error {
	if c.closed {
		return &QueryError{Message: ErrConnClosed.Error(), Err: ErrConnClosed}
	}
	if err := c.drv.Ping(ctx); err != nil {
		return NewQueryError(err)
	}
	return nil
}

// Close releases the session, discarding uncommitted work. Safe to call
// more than once.
func (c *Conn) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}

	if c.tx != nil {
		c.log.Debug("Discarding open transaction on close")
		if err := c.Rollback(ctx); err != nil {
			c.log.Warn("Rollback on close failed", zap.Error(err))
		}
	}

	c.closed = true
	if err := c.drv.Close(ctx); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}

	c.log.Info("Database connection closed")
	return nil
}

type row struct {
	row pgx.Row
}

func (r row) Scan(dest ...any) error {
	return NewQueryError(r.row.Scan(dest...))
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }

// compactSQL collapses whitespace so multi-line statements log on one line
func compactSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
