package main

import (
	"context"
	"fmt"
	"os"

	"movie-rating/cmd"
	"movie-rating/internal/data/schema"
	"movie-rating/internal/printer"
	"movie-rating/internal/usecase"
	"movie-rating/internal/wire"
	"movie-rating/pkg/database"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

func run(ctx context.Context, command string, config *utils.Config, logger *zap.Logger) error {
	switch command {
	case "provision", "movies", "databases", "serve":
	default:
		return fmt.Errorf("unknown command %q, want one of: provision, movies, databases, serve", command)
	}

	user, password, err := cmd.NewPrompter(os.Stdin, os.Stdout).
		Credentials(config.Database.User, config.Database.Password)
	if err != nil {
		return err
	}

	opts := database.Options{
		Host:           config.Database.Host,
		Port:           config.Database.Port,
		User:           user,
		Password:       password,
		Database:       config.Database.Name,
		Autocommit:     config.Database.Autocommit,
		ConnectTimeout: config.Database.ConnectTimeout,
		SSLMode:        config.Database.SSLMode,
	}
	out := printer.New(os.Stdout)

	switch command {
	case "movies":
		return printMovies(ctx, opts, out, logger)
	case "databases":
		return printDatabases(ctx, opts, out, logger)
	case "serve":
		return serve(ctx, opts, config, logger)
	default:
		return provision(ctx, opts, out, logger)
	}
}

// serverOptions targets the maintenance database in autocommit mode
func serverOptions(opts database.Options) database.Options {
	opts.Database = ""
	opts.Autocommit = true
	return opts
}

func provision(ctx context.Context, opts database.Options, out *printer.Printer, logger *zap.Logger) error {
	name := opts.Database
	if name == "" {
		name = schema.DatabaseName
	}

	if err := ensureDatabase(ctx, serverOptions(opts), name, logger); err != nil {
		return err
	}

	opts.Database = name
	if err := ensureTables(ctx, opts, logger); err != nil {
		return err
	}

	if err := out.Notice("Database %s is ready", name); err != nil {
		return err
	}
	return printDatabases(ctx, opts, out, logger)
}

func ensureDatabase(ctx context.Context, opts database.Options, name string, logger *zap.Logger) error {
	conn, err := database.Connect(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return schema.NewProvisioner(conn, logger).EnsureDatabase(ctx, name)
}

func ensureTables(ctx context.Context, opts database.Options, logger *zap.Logger) error {
	conn, err := database.Connect(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return schema.NewProvisioner(conn, logger).EnsureTables(ctx)
}

func printDatabases(ctx context.Context, opts database.Options, out *printer.Printer, logger *zap.Logger) error {
	conn, err := database.Connect(ctx, serverOptions(opts), logger)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	names, err := schema.NewProvisioner(conn, logger).ListDatabases(ctx)
	if err != nil {
		return err
	}
	return out.PrintList("Database", names)
}

func printMovies(ctx context.Context, opts database.Options, out *printer.Printer, logger *zap.Logger) error {
	conn, err := database.Connect(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	rows, err := usecase.NewService(conn, logger).Movie.SelectAll(ctx)
	if err != nil {
		return err
	}

	_, err = out.Print(rows)
	return err
}

func serve(ctx context.Context, opts database.Options, config *utils.Config, logger *zap.Logger) error {
	// the HTTP API serves concurrent requests, so it gets a pool in autocommit mode
	pool, err := database.InitPool(ctx, database.PoolOptions{
		Options:  opts,
		MaxConns: config.Database.MaxConns,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	logger.Info("Database pool ready", zap.String("database", opts.Database))

	app := wire.Wiring(pool, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
	return cmd.APIServer(ctx, app.Router, config.App.Port, logger)
}
