// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/db"
	"github.com/danielhkuo/dcr/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Register stores an admin credential and returns its id.
// Usernames are not checked for duplicates.
func Register(ctx context.Context, conn *sqlx.DB, username, password string) (int64, error) {
	id, err := db.Insert(ctx, conn, "INSERT INTO admin (username, password) VALUES (?, ?)", username, password)
	if err != nil {
		return 0, fmt.Errorf("failed to register admin: %w", err)
	}
	return id, nil
}

// Login looks up an admin whose username and password both match exactly.
func Login(ctx context.Context, conn *sqlx.DB, username, password string) (models.AdminCredential, error) {
	var admin models.AdminCredential
	err := conn.GetContext(ctx, &admin,
		conn.Rebind("SELECT id, username, password FROM admin WHERE username = ? AND password = ?"),
		username, password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AdminCredential{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.AdminCredential{}, fmt.Errorf("failed to query admin: %w", err)
	}
	return admin, nil
}
