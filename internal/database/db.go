package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotConfigured = errors.New("database connection string is not configured")
	ErrClosed        = errors.New("database is closed")
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// DB is a process-wide pool that is created on first use. A missing or
// malformed connection string surfaces as an error on every call.
type DB struct {
	url  string
	once sync.Once
	pool *pgxpool.Pool
	err  error
}

func New(url string) *DB {
	return &DB{url: url}
}

// NewFromPool wraps an already opened pool.
func NewFromPool(pool *pgxpool.Pool) *DB {
	db := &DB{pool: pool}
	db.once.Do(func() {})
	return db
}

func (d *DB) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	d.once.Do(func() {
		if d.url == "" {
			d.err = ErrNotConfigured
			return
		}
		pool, err := pgxpool.New(context.WithoutCancel(ctx), d.url)
		if err != nil {
			d.err = fmt.Errorf("failed to create connection pool: %w", err)
			return
		}
		d.pool = pool
	})
	return d.pool, d.err
}

func (d *DB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	pool, err := d.Pool(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

func (d *DB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	pool, err := d.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

func (d *DB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	pool, err := d.Pool(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

func (d *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	pool, err := d.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Begin(ctx)
}

// Ping runs the admin probe query and reports whether it returned 1.
func (d *DB) Ping(ctx context.Context) (bool, error) {
	var ok int
	if err := d.QueryRow(ctx, `SELECT 1 AS ok`).Scan(&ok); err != nil {
		return false, err
	}
	return ok == 1, nil
}

// CheckHealth runs the public readiness probe and returns the database clock.
func (d *DB) CheckHealth(ctx context.Context) (bool, time.Time, error) {
	var ok int
	var dbTime time.Time
	if err := d.QueryRow(ctx, `SELECT 1 AS ok, NOW() AS db_time`).Scan(&ok, &dbTime); err != nil {
		return false, time.Time{}, err
	}
	return ok == 1, dbTime, nil
}

// Close releases the pool if it was ever created. A DB closed before first
// use never opens one.
func (d *DB) Close() {
	d.once.Do(func() {
		d.err = ErrClosed
	})
	if d.pool != nil {
		d.pool.Close()
	}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
