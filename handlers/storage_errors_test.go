// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/dcr/cliparse"
	"github.com/danielhkuo/dcr/models"
	"github.com/danielhkuo/dcr/testutil"
)

var errConnLost = errors.New("connection lost")

type handlerSet struct {
	chores     *ChoreHandler
	activities *ActivityHandler
	guides     *GuideHandler
	quotes     *QuoteHandler
	about      *AboutHandler
	admin      *AdminHandler
}

func newHandlerSet(db *sqlx.DB, cfg cliparse.Config) *handlerSet {
	return &handlerSet{
		chores:     NewChoreHandler(db, cfg),
		activities: NewActivityHandler(db, cfg),
		guides:     NewGuideHandler(db, cfg),
		quotes:     NewQuoteHandler(db, cfg),
		about:      NewAboutHandler(db, cfg),
		admin:      NewAdminHandler(db, cfg),
	}
}

func TestStorageErrors(t *testing.T) {
	cfg := testutil.GetTestConfig()

	cases := []struct {
		name    string
		pattern string
		query   bool // SELECT expectations use ExpectQuery
		method  string
		path    string
		id      string
		body    string
		pick    func(c *handlerSet) http.HandlerFunc
	}{
		{"list chores", "SELECT id, chores_name", true, "GET", "/chores", "", "", func(c *handlerSet) http.HandlerFunc { return c.chores.List }},
		{"chores by day", "FROM chores WHERE day", true, "GET", "/chores/day/Monday", "", "", func(c *handlerSet) http.HandlerFunc { return c.chores.ListByDay }},
		{"create chore", "INSERT INTO chores", false, "POST", "/chores", "", `{"chores_name":"x"}`, func(c *handlerSet) http.HandlerFunc { return c.chores.Create }},
		{"update chore", "UPDATE chores", false, "PUT", "/chores/1", "1", `{"chores_name":"x"}`, func(c *handlerSet) http.HandlerFunc { return c.chores.Update }},
		{"delete chore", "DELETE FROM chores", false, "DELETE", "/chores/1", "1", "", func(c *handlerSet) http.HandlerFunc { return c.chores.Delete }},
		{"list activities", "FROM activities", true, "GET", "/activities", "", "", func(c *handlerSet) http.HandlerFunc { return c.activities.List }},
		{"create guide", "INSERT INTO guides", false, "POST", "/guides", "", `{"guide_name":"x"}`, func(c *handlerSet) http.HandlerFunc { return c.guides.Create }},
		{"random quote", "FROM motivational_qoute", true, "GET", "/quote/random", "", "", func(c *handlerSet) http.HandlerFunc { return c.quotes.Random }},
		{"delete about", "DELETE FROM about", false, "DELETE", "/about/3", "3", "", func(c *handlerSet) http.HandlerFunc { return c.about.Delete }},
		{"register admin", "INSERT INTO admin", false, "POST", "/admin/register?username=a&password=b", "", "", func(c *handlerSet) http.HandlerFunc { return c.admin.Register }},
		{"login admin", "FROM admin WHERE", true, "POST", "/admin/login?username=a&password=b", "", "", func(c *handlerSet) http.HandlerFunc { return c.admin.Login }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := testutil.SetupMockDB(t)
			if tc.query {
				mock.ExpectQuery(tc.pattern).WillReturnError(errConnLost)
			} else {
				mock.ExpectExec(tc.pattern).WillReturnError(errConnLost)
			}

			set := newHandlerSet(db, cfg)
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.id != "" {
				req.SetPathValue("id", tc.id)
			}
			if tc.name == "chores by day" {
				req.SetPathValue("day", "Monday")
			}
			w := httptest.NewRecorder()

			tc.pick(set)(w, req)

			testutil.AssertStatus(t, w, http.StatusInternalServerError)
			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != "Database error" {
				t.Errorf("Expected 'Database error', got '%s'", resp.Message)
			}
			if strings.Contains(w.Body.String(), errConnLost.Error()) {
				t.Error("Response leaks storage error detail")
			}
		})
	}
}

func TestStorageErrors_LogsDatabaseType(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	db, mock := testutil.SetupMockDB(t)
	mock.ExpectExec("DELETE FROM chores").WillReturnError(errConnLost)

	cfg := testutil.GetTestConfig()
	cfg.DatabaseType = cliparse.DatabasePostgres
	handler := NewChoreHandler(db, cfg)

	req := httptest.NewRequest("DELETE", "/chores/9", nil)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log entry %q: %v", buf.String(), err)
	}
	if entry["database"] != cliparse.DatabasePostgres {
		t.Errorf("Expected database 'postgres' in log, got %v", entry["database"])
	}
	if entry["error"] != errConnLost.Error() {
		t.Errorf("Expected error %q in log, got %v", errConnLost.Error(), entry["error"])
	}
}
