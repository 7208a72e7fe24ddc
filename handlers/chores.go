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

type ChoreHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewChoreHandler(db *sqlx.DB, cfg cliparse.Config) *ChoreHandler {
	return &ChoreHandler{db: db, cfg: cfg}
}

// Create handles POST /chores
func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var chore models.Chore
	if err := middleware.ParseJSONBody(r, &chore); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := db.Insert(r.Context(), h.db,
		"INSERT INTO chores (chores_name, description, day) VALUES (?, ?, ?)",
		chore.ChoresName, chore.Description, chore.Day)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert chore", err)
		return
	}

	slog.Info("chore created", "chore_id", id, "day", chore.Day)
	created(w, "Chore added successfully", id)
}

// List handles GET /chores
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	chores := []models.Chore{}
	err := h.db.SelectContext(r.Context(), &chores,
		"SELECT id, chores_name, description, day FROM chores ORDER BY id")
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query chores", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, chores)
}

// ListByDay handles GET /chores/day/{day}
// Fails with 404 when no chore is stored for the day
func (h *ChoreHandler) ListByDay(w http.ResponseWriter, r *http.Request) {
	day := r.PathValue("day")

	chores := []models.Chore{}
	err := h.db.SelectContext(r.Context(), &chores,
		h.db.Rebind("SELECT id, chores_name, description, day FROM chores WHERE day = ? ORDER BY id"), day)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query chores by day", err)
		return
	}

	if len(chores) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No chores found for the given day")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, chores)
}

// Update handles PUT /chores/{id}
// An unknown id is a no-op
func (h *ChoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var chore models.Chore
	if err := middleware.ParseJSONBody(r, &chore); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := db.Exec(r.Context(), h.db,
		"UPDATE chores SET chores_name = ?, description = ?, day = ? WHERE id = ?",
		chore.ChoresName, chore.Description, chore.Day, id)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to update chore", err)
		return
	}

	slog.Info("chore updated", "chore_id", id)
	message(w, "Chore updated successfully")
}

// Delete handles DELETE /chores/{id}
// An unknown id is a no-op
func (h *ChoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := db.Exec(r.Context(), h.db, "DELETE FROM chores WHERE id = ?", id); err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to delete chore", err)
		return
	}

	slog.Info("chore deleted", "chore_id", id)
	message(w, "Chore deleted successfully")
}
