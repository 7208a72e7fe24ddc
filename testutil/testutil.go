// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/db"
	"github.com/danielhkuo/dcr/models"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.DriverSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each pooled connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupMockDB returns a sqlx handle backed by sqlmock.
// Expectations are verified when the test finishes.
func SetupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("Unmet sqlmock expectations: %v", err)
		}
		mockDB.Close()
	})

	return sqlx.NewDb(mockDB, db.DriverSQLite), mock
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// CreateTestChore inserts a chore and returns its ID
func CreateTestChore(t *testing.T, conn *sqlx.DB, name, day string) int64 {
	t.Helper()

	id, err := db.Insert(context.Background(), conn,
		"INSERT INTO chores (chores_name, description, day) VALUES (?, ?, ?)",
		name, name+" description", day)
	if err != nil {
		t.Fatalf("Failed to create test chore: %v", err)
	}
	return id
}

// CreateTestQuote inserts a motivational quote and returns its ID
func CreateTestQuote(t *testing.T, conn *sqlx.DB, quote string) int64 {
	t.Helper()

	id, err := db.Insert(context.Background(), conn,
		"INSERT INTO motivational_qoute (quote) VALUES (?)", quote)
	if err != nil {
		t.Fatalf("Failed to create test quote: %v", err)
	}
	return id
}

// CreateTestAdmin inserts an admin credential and returns its ID
func CreateTestAdmin(t *testing.T, conn *sqlx.DB, username, password string) int64 {
	t.Helper()

	id, err := db.Insert(context.Background(), conn,
		"INSERT INTO admin (username, password) VALUES (?, ?)", username, password)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return id
}

// ListTestChores reads every chore straight from the table
func ListTestChores(t *testing.T, conn *sqlx.DB) []models.Chore {
	t.Helper()

	chores := []models.Chore{}
	if err := conn.Select(&chores, "SELECT id, chores_name, description, day FROM chores ORDER BY id"); err != nil {
		t.Fatalf("Failed to list chores: %v", err)
	}
	return chores
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
