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

type ActivityHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewActivityHandler(db *sqlx.DB, cfg cliparse.Config) *ActivityHandler {
	return &ActivityHandler{db: db, cfg: cfg}
}

// Create handles POST /activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := middleware.ParseJSONBody(r, &activity); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := db.Insert(r.Context(), h.db,
		"INSERT INTO activities (activity_name, description, day) VALUES (?, ?, ?)",
		activity.ActivityName, activity.Description, activity.Day)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert activity", err)
		return
	}

	slog.Info("activity created", "activity_id", id)
	created(w, "Activity added successfully", id)
}

// List handles GET /activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities := []models.Activity{}
	err := h.db.SelectContext(r.Context(), &activities,
		"SELECT id, activity_name, description, day FROM activities ORDER BY id")
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query activities", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activities)
}

// Update handles PUT /activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var activity models.Activity
	if err := middleware.ParseJSONBody(r, &activity); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := db.Exec(r.Context(), h.db,
		"UPDATE activities SET activity_name = ?, description = ?, day = ? WHERE id = ?",
		activity.ActivityName, activity.Description, activity.Day, id)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to update activity", err)
		return
	}

	slog.Info("activity updated", "activity_id", id)
	message(w, "Activity updated successfully")
}

// Delete handles DELETE /activities/{id}
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := db.Exec(r.Context(), h.db, "DELETE FROM activities WHERE id = ?", id); err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to delete activity", err)
		return
	}

	slog.Info("activity deleted", "activity_id", id)
	message(w, "Activity deleted successfully")
}
