// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the DCR API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ChoreHandler: chores CRUD and the per-day listing
  - ActivityHandler: activities CRUD
  - GuideHandler: guides CRUD
  - QuoteHandler: motivational quotes CRUD and the random pick
  - AboutHandler: about entries CRUD
  - AdminHandler: admin registration and login

Handlers are created via constructor functions that accept *sqlx.DB and Config:

	choreHandler := handlers.NewChoreHandler(db, cfg)

# CRUD Contract

Every entity exposes the same four operations:

	POST   /{entity}      → Create (201, returns the new id)
	GET    /{entity}      → List (ordered by id, [] when empty)
	PUT    /{entity}/{id} → Update (full replace, unknown id is a no-op)
	DELETE /{entity}/{id} → Delete (unknown id is a no-op)

A non-integer {id} or an undecodable body is a 400. Storage failures are
logged and returned as a 500 "Database error".

# Extra Queries

	GET /chores/day/{day} → ListByDay (404 when no chore matches)
	GET /quote/random     → Random (404 when no quote is stored)

# Admin

	POST /admin/register → Register
	POST /admin/login    → Login (400 on any mismatch)

Credentials come from a JSON body or from username/password query or form
values.
*/
package handlers
