package schema

import (
	"context"
	"errors"
	"fmt"

	"movie-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Conn is what the provisioner needs from a connection. *database.Conn
// implements it.
type Conn interface {
	database.Session
	ExecImmediate(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	InTransaction() bool
}

type Provisioner struct {
	conn Conn
	log  *zap.Logger
}

func NewProvisioner(conn Conn, log *zap.Logger) *Provisioner {
	return &Provisioner{
		conn: conn,
		log:  log.With(zap.String("component", "provisioner")),
	}
}

// EnsureDatabase creates the named database unless it already exists.
func (p *Provisioner) EnsureDatabase(ctx context.Context, name string) error {
	object := "database " + name

	if name == "" {
		return &database.SchemaError{Object: "database", Err: errors.New("database name is required")}
	}
	if p.conn.InTransaction() {
		return &database.SchemaError{Object: object, Err: database.ErrTxInProgress}
	}

	exists, err := p.databaseExists(ctx, name)
	if err != nil {
		p.log.Error("Failed to check database existence", zap.Error(err), zap.String("database", name))
		return database.NewSchemaError(object, err)
	}
	if exists {
		p.log.Debug("Database already exists", zap.String("database", name))
		return nil
	}

	query := "CREATE DATABASE " + pgx.Identifier{name}.Sanitize()
	if _, err := p.conn.ExecImmediate(ctx, query); err != nil {
		// lost a race with another creator
		if database.SQLState(err) == database.CodeDuplicateDatabase {
			p.log.Debug("Database created concurrently", zap.String("database", name))
			return nil
		}
		p.log.Error("Failed to create database", zap.Error(err), zap.String("database", name))
		return database.NewSchemaError(object, err)
	}

	p.log.Info("Database created", zap.String("database", name))
	return nil
}

func (p *Provisioner) databaseExists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`

	var exists bool
	if err := p.conn.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		p.abort(ctx)
		return false, err
	}

	// the existence check must not leave a transaction open before CREATE DATABASE
	if !p.conn.Autocommit() {
		if err := p.conn.Commit(ctx); err != nil {
			return false, err
		}
	}

	return exists, nil
}

// EnsureTables creates movies, reviewers and ratings, in that order, and
// commits them as one unit when the connection is not in autocommit mode.
func (p *Provisioner) EnsureTables(ctx context.Context) error {
	for _, table := range Tables() {
		if err := p.createTable(ctx, table); err != nil {
			p.abort(ctx)
			return err
		}
	}

	if err := p.conn.Commit(ctx); err != nil {
		p.log.Error("Failed to commit schema", zap.Error(err))
		return database.NewSchemaError("tables", err)
	}

	p.log.Info("Schema ready", zap.Int("tables", len(Tables())))
	return nil
}

// EnsureTable creates a single table and commits it. Creating a table
// before the tables it references fails.
func (p *Provisioner) EnsureTable(ctx context.Context, table Table) error {
	if err := p.createTable(ctx, table); err != nil {
		p.abort(ctx)
		return err
	}

	if err := p.conn.Commit(ctx); err != nil {
		return database.NewSchemaError("table "+table.Name, err)
	}
	return nil
}

func (p *Provisioner) createTable(ctx context.Context, table Table) error {
	if _, err := p.conn.Exec(ctx, table.DDL); err != nil {
		p.log.Error("Failed to create table",
			zap.Error(err),
			zap.String("table", table.Name),
			zap.String("sqlstate", database.SQLState(err)),
		)
		return database.NewSchemaError("table "+table.Name, err)
	}

	p.log.Debug("Table ensured", zap.String("table", table.Name))
	return nil
}

// abort drops the failed transaction; PostgreSQL rejects every further
// statement in it otherwise.
func (p *Provisioner) abort(ctx context.Context) {
	if p.conn.Autocommit() {
		return
	}
	if err := p.conn.Rollback(ctx); err != nil {
		p.log.Warn("Rollback after schema failure failed", zap.Error(err))
	}
}

// ListDatabases returns the names of all non-template databases.
func (p *Provisioner) ListDatabases(ctx context.Context) ([]string, error) {
	query := `SELECT datname FROM pg_database WHERE NOT datistemplate ORDER BY datname`
	ownTx := !p.conn.Autocommit() && !p.conn.InTransaction()

	rows, err := p.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan database name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list databases: %w", err)
	}

	if ownTx {
		if err := p.conn.Commit(ctx); err != nil {
			return nil, fmt.Errorf("end read transaction: %w", err)
		}
	}

	return names, nil
}
