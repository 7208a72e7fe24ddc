// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open wraps sqlx.ConnectContext and pings the server:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

The postgres (lib/pq), sqlite (modernc.org/sqlite) and mysql
(go-sql-driver/mysql) drivers are registered by this package.

# Schema Creation

CreateSchema initializes all required tables for the connected dialect:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - about: description, system_developer, date_created
  - activities: activity_name, description, day
  - chores: chores_name, description, day
  - guides: guide_name, guide_description, image
  - motivational_qoute: quote
  - admin: username, password

Every table has an auto-increment integer id and no foreign keys.

# Queries

Statements are written with ? placeholders and rebound per driver. Insert
returns the new id on every dialect:

	id, err := db.Insert(ctx, conn, "INSERT INTO chores (chores_name, description, day) VALUES (?, ?, ?)", ...)
*/
package db
