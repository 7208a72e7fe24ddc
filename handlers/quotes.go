// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/db"
	"github.com/danielhkuo/dcr/middleware"
	"github.com/danielhkuo/dcr/models"
)

type QuoteHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config

	// intn picks an index in [0, n); rand.IntN outside tests
	intn func(n int) int
}

func NewQuoteHandler(db *sqlx.DB, cfg cliparse.Config) *QuoteHandler {
	return &QuoteHandler{db: db, cfg: cfg, intn: rand.IntN}
}

// Create handles POST /quotes
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var quote models.MotivationalQuote
	if err := middleware.ParseJSONBody(r, &quote); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := db.Insert(r.Context(), h.db,
		"INSERT INTO motivational_qoute (quote) VALUES (?)", quote.Quote)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert quote", err)
		return
	}

	slog.Info("quote created", "quote_id", id)
	created(w, "Quote added successfully", id)
}

// List handles GET /quotes
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.all(r)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query quotes", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, quotes)
}

// Random handles GET /quote/random
// Every stored quote is equally likely; an empty table is a 404
func (h *QuoteHandler) Random(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.all(r)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query quotes", err)
		return
	}

	if len(quotes) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No quotes found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, quotes[h.intn(len(quotes))])
}

// Update handles PUT /quotes/{id}
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var quote models.MotivationalQuote
	if err := middleware.ParseJSONBody(r, &quote); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := db.Exec(r.Context(), h.db,
		"UPDATE motivational_qoute SET quote = ? WHERE id = ?", quote.Quote, id)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to update quote", err)
		return
	}

	slog.Info("quote updated", "quote_id", id)
	message(w, "Quote updated successfully")
}

// Delete handles DELETE /quotes/{id}
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := db.Exec(r.Context(), h.db, "DELETE FROM motivational_qoute WHERE id = ?", id); err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to delete quote", err)
		return
	}

	slog.Info("quote deleted", "quote_id", id)
	message(w, "Quote deleted successfully")
}

func (h *QuoteHandler) all(r *http.Request) ([]models.MotivationalQuote, error) {
	quotes := []models.MotivationalQuote{}
	err := h.db.SelectContext(r.Context(), &quotes,
		"SELECT id, quote FROM motivational_qoute ORDER BY id")
	return quotes, err
}
