// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/db"
	"github.com/danielhkuo/dcr/middleware"
	"github.com/danielhkuo/dcr/models"
)

type AboutHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewAboutHandler(db *sqlx.DB, cfg cliparse.Config) *AboutHandler {
	return &AboutHandler{db: db, cfg: cfg}
}

// Create handles POST /about
func (h *AboutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var about models.About
	if err := middleware.ParseJSONBody(r, &about); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := db.Insert(r.Context(), h.db,
		"INSERT INTO about (description, system_developer, date_created) VALUES (?, ?, ?)",
		about.Description, about.SystemDeveloper, about.DateCreated)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert about", err)
		return
	}

	slog.Info("about created", "about_id", id)
	created(w, "About added successfully", id)
}

// List handles GET /about
func (h *AboutHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := []models.About{}
	err := h.db.SelectContext(r.Context(), &entries,
		"SELECT id, description, system_developer, date_created FROM about ORDER BY id")
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query about", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// Update handles PUT /about/{id}
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var about models.About
	if err := middleware.ParseJSONBody(r, &about); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := db.Exec(r.Context(), h.db,
		"UPDATE about SET description = ?, system_developer = ?, date_created = ? WHERE id = ?",
		about.Description, about.SystemDeveloper, about.DateCreated, id)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to update about", err)
		return
	}

	slog.Info("about updated", "about_id", id)
	message(w, "About updated successfully")
}

// Delete handles DELETE /about/{id}
func (h *AboutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := db.Exec(r.Context(), h.db, "DELETE FROM about WHERE id = ?", id); err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to delete about", err)
		return
	}

	slog.Info("about deleted", "about_id", id)
	message(w, "About deleted successfully")
}
