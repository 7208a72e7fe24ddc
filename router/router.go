// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/handlers"
	"github.com/danielhkuo/dcr/middleware"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	choreHandler := handlers.NewChoreHandler(db, cfg)
	activityHandler := handlers.NewActivityHandler(db, cfg)
	guideHandler := handlers.NewGuideHandler(db, cfg)
	quoteHandler := handlers.NewQuoteHandler(db, cfg)
	aboutHandler := handlers.NewAboutHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Chores
	collection(mux, "POST /chores", choreHandler.Create)
	collection(mux, "GET /chores", choreHandler.List)
	mux.HandleFunc("PUT /chores/{id}", middleware.WithLogging(choreHandler.Update))
	mux.HandleFunc("DELETE /chores/{id}", middleware.WithLogging(choreHandler.Delete))
	mux.HandleFunc("GET /chores/day/{day}", middleware.WithLogging(choreHandler.ListByDay))

	// Guides
	collection(mux, "POST /guides", guideHandler.Create)
	collection(mux, "GET /guides", guideHandler.List)
	mux.HandleFunc("PUT /guides/{id}", middleware.WithLogging(guideHandler.Update))
	mux.HandleFunc("DELETE /guides/{id}", middleware.WithLogging(guideHandler.Delete))

	// Motivational quotes
	collection(mux, "POST /quotes", quoteHandler.Create)
	collection(mux, "GET /quotes", quoteHandler.List)
	mux.HandleFunc("PUT /quotes/{id}", middleware.WithLogging(quoteHandler.Update))
	mux.HandleFunc("DELETE /quotes/{id}", middleware.WithLogging(quoteHandler.Delete))
	mux.HandleFunc("GET /quote/random", middleware.WithLogging(quoteHandler.Random))

	// Activities
	collection(mux, "POST /activities", activityHandler.Create)
	collection(mux, "GET /activities", activityHandler.List)
	mux.HandleFunc("PUT /activities/{id}", middleware.WithLogging(activityHandler.Update))
	mux.HandleFunc("DELETE /activities/{id}", middleware.WithLogging(activityHandler.Delete))

	// About
	collection(mux, "POST /about", aboutHandler.Create)
	collection(mux, "GET /about", aboutHandler.List)
	mux.HandleFunc("PUT /about/{id}", middleware.WithLogging(aboutHandler.Update))
	mux.HandleFunc("DELETE /about/{id}", middleware.WithLogging(aboutHandler.Delete))

	// Admin
	mux.HandleFunc("POST /admin/register", middleware.WithLogging(adminHandler.Register))
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dcr API v1"))
	})

	return mux
}

// collection registers a collection route with and without the trailing slash
func collection(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	logged := middleware.WithLogging(h)
	mux.HandleFunc(pattern, logged)
	mux.HandleFunc(pattern+"/{$}", logged)
}
