// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/dcr/middleware"
	"github.com/danielhkuo/dcr/models"
)

// pathID reads the {id} path value, writing a 400 when it is not an integer
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

// databaseError logs the cause with the configured database type and writes a generic 500
func databaseError(w http.ResponseWriter, r *http.Request, database, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"database", database,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

func message(w http.ResponseWriter, msg string) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: msg})
}

func created(w http.ResponseWriter, msg string, id int64) {
	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{Message: msg, ID: id})
}
