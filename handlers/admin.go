// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/auth"
	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/middleware"
	"github.com/danielhkuo/dcr/models"
)

var (
	errInvalidJSON        = errors.New("invalid JSON")
	errMissingCredentials = errors.New("username and password are required")
)

type AdminHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sqlx.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// Register handles POST /admin/register
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r)
	if err != nil {
		credentialsError(w, err)
		return
	}

	id, err := auth.Register(r.Context(), h.db, creds.Username, creds.Password)
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to insert admin", err)
		return
	}

	slog.Info("admin registered", "admin_id", id, "username", creds.Username)
	created(w, "Admin registered successfully", id)
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r)
	if err != nil {
		credentialsError(w, err)
		return
	}

	admin, err := auth.Login(r.Context(), h.db, creds.Username, creds.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Info("admin login rejected", "username", creds.Username)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid username or password")
		return
	}
	if err != nil {
		databaseError(w, r, h.cfg.DatabaseType, "failed to query admin", err)
		return
	}

	slog.Info("admin logged in", "admin_id", admin.ID)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message:  "Login successful",
		Username: admin.Username,
	})
}

// parseCredentials accepts a JSON body or username/password query and form values.
// Both fields must be present; their values are passed through as sent.
func parseCredentials(r *http.Request) (models.AdminCredentialsRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body struct {
			Username *string `json:"username"`
			Password *string `json:"password"`
		}
		if err := middleware.ParseJSONBody(r, &body); err != nil {
			return models.AdminCredentialsRequest{}, errInvalidJSON
		}
		if body.Username == nil || body.Password == nil {
			return models.AdminCredentialsRequest{}, errMissingCredentials
		}
		return models.AdminCredentialsRequest{Username: *body.Username, Password: *body.Password}, nil
	}

	if err := r.ParseForm(); err != nil {
		return models.AdminCredentialsRequest{}, err
	}
	if !r.Form.Has("username") || !r.Form.Has("password") {
		return models.AdminCredentialsRequest{}, errMissingCredentials
	}
	return models.AdminCredentialsRequest{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}

func credentialsError(w http.ResponseWriter, err error) {
	if errors.Is(err, errInvalidJSON) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
}
