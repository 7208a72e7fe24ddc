// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the DCR API server.

DCR (daily chores reminder) serves chores, activities, guides, motivational
quotes and about entries over plain CRUD endpoints, plus admin registration
and login.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:dcr.db go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."
	go run . -t mysql -d "root:@tcp(127.0.0.1:3306)/dcr_db"

A .env file in the working directory is read first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): driver connection string

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers, one per entity
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, JSON helpers
  - models: Request/response and table types
  - auth: Admin credential storage and login
  - db: Connection, schema creation, insert helpers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
