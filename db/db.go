// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know about
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	return conn, nil
}

// Insert runs an INSERT written with ? placeholders and returns the new row id.
// Postgres has no LastInsertId, so the id comes back through RETURNING.
func Insert(ctx context.Context, conn *sqlx.DB, query string, args ...any) (int64, error) {
	if conn.DriverName() == DriverPostgres {
		var id int64
		err := conn.QueryRowxContext(ctx, conn.Rebind(query+" RETURNING id"), args...).Scan(&id)
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := conn.ExecContext(ctx, conn.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Exec runs a statement written with ? placeholders.
func Exec(ctx context.Context, conn *sqlx.DB, query string, args ...any) error {
	_, err := conn.ExecContext(ctx, conn.Rebind(query), args...)
	return err
}
