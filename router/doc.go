// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the DCR API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Entities (collection routes also accept a trailing slash):

	POST   /chores           GET /chores
	PUT    /chores/{id}      DELETE /chores/{id}
	GET    /chores/day/{day}

	POST   /guides           GET /guides
	PUT    /guides/{id}      DELETE /guides/{id}

	POST   /quotes           GET /quotes
	PUT    /quotes/{id}      DELETE /quotes/{id}
	GET    /quote/random

	POST   /activities       GET /activities
	PUT    /activities/{id}  DELETE /activities/{id}

	POST   /about            GET /about
	PUT    /about/{id}       DELETE /about/{id}

Admin:

	POST /admin/register
	POST /admin/login

# Handler Initialization

The router creates one handler per entity with dependency injection:

	choreHandler := handlers.NewChoreHandler(db, cfg)
	quoteHandler := handlers.NewQuoteHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

All handlers receive the database handle and configuration.
*/
package router
