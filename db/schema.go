// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Tables lists every table the service owns.
var Tables = []string{"about", "activities", "chores", "guides", "motivational_qoute", "admin"}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sqlx.DB) error {
	pk, err := primaryKey(conn.DriverName())
	if err != nil {
		return err
	}

	// One statement per Exec; the mysql driver rejects multi-statement strings
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		stmt = strings.ReplaceAll(stmt, "{{pk}}", pk)
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func primaryKey(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "id SERIAL PRIMARY KEY", nil
	case DriverMySQL:
		return "id INT AUTO_INCREMENT PRIMARY KEY", nil
	case DriverSQLite:
		return "id INTEGER PRIMARY KEY AUTOINCREMENT", nil
	}
	return "", fmt.Errorf("no schema for driver %q", driver)
}

const schema = `
CREATE TABLE IF NOT EXISTS about (
    {{pk}},
    description TEXT NOT NULL,
    system_developer TEXT NOT NULL,
    date_created DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
    {{pk}},
    activity_name TEXT NOT NULL,
    description TEXT NOT NULL,
    day TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chores (
    {{pk}},
    chores_name TEXT NOT NULL,
    description TEXT NOT NULL,
    day TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS guides (
    {{pk}},
    guide_name TEXT NOT NULL,
    guide_description TEXT NOT NULL,
    image TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS motivational_qoute (
    {{pk}},
    quote TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS admin (
    {{pk}},
    username TEXT NOT NULL,
    password TEXT NOT NULL
)
`
