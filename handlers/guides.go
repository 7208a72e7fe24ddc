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

type GuideHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewGuideHandler(db *sqlx.DB, cfg cliparse.Config) *GuideHandler {
	return &GuideHandler{db: db, cfg: cfg}
}

// Create handles POST /guides
func (h *GuideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var guide models.Guide
	if err := middleware.ParseJSONBody(r, &guide); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := db.Insert(r.Context(), h.db,
		"INSERT INTO guides (guide_name, guide_description, image) VALUES (?, ?, ?)",
		guide.GuideName, guide.GuideDescription, guide.Image)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert guide", err)
		return
	}

	slog.Info("guide created", "guide_id", id)
	created(w, "Guide added successfully", id)
}

// List handles GET /guides
func (h *GuideHandler) List(w http.ResponseWriter, r *http.Request) {
	guides := []models.Guide{}
	err := h.db.SelectContext(r.Context(), &guides,
		"SELECT id, guide_name, guide_description, image FROM guides ORDER BY id")
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query guides", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, guides)
}

// Update handles PUT /guides/{id}
func (h *GuideHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var guide models.Guide
	if err := middleware.ParseJSONBody(r, &guide); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := db.Exec(r.Context(), h.db,
		"UPDATE guides SET guide_name = ?, guide_description = ?, image = ? WHERE id = ?",
		guide.GuideName, guide.GuideDescription, guide.Image, id)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to update guide", err)
		return
	}

	slog.Info("guide updated", "guide_id", id)
	message(w, "Guide updated successfully")
}

// Delete handles DELETE /guides/{id}
func (h *GuideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := db.Exec(r.Context(), h.db, "DELETE FROM guides WHERE id = ?", id); err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to delete guide", err)
		return
	}

	slog.Info("guide deleted", "guide_id", id)
	message(w, "Guide deleted successfully")
}
