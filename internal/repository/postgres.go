package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/limbo/discipline/pkg/cleanup"
	"github.com/pressly/goose"
)

// NewPgPool opens and pings a pool shared by the PostgreSQL repositories.
// The pool is closed by the cleanup jobs.
func NewPgPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// MigratePostgres applies the goose migrations found in dir.
func MigratePostgres(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(conn, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
