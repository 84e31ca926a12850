// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stylemehq/styleme-server/auth"
	"github.com/stylemehq/styleme-server/db"
	"github.com/stylemehq/styleme-server/imagestore"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// Single connection, same as production, so writes serialize.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// SetupImageStore creates an image store rooted in a temp directory.
func SetupImageStore(t *testing.T) *imagestore.Store {
	t.Helper()

	store, err := imagestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create image store: %v", err)
	}
	return store
}

// CreateTestUser inserts a user with a hashed password.
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if _, err := conn.Exec(`INSERT INTO users (email, password) VALUES (?, ?)`, email, hash); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestPost inserts a post and its image file, returning the post
// ID and stored filename.
func CreateTestPost(t *testing.T, conn *sql.DB, store *imagestore.Store, ownerEmail, question string) (int64, string) {
	t.Helper()

	filename, err := store.Save([]byte("fake image bytes"))
	if err != nil {
		t.Fatalf("Failed to save test image: %v", err)
	}

	res, err := conn.Exec(`
		INSERT INTO posts (user_email, img_filename, question, option_a, option_b)
		VALUES (?, ?, ?, 'Option A', 'Option B')
	`, ownerEmail, filename, question)
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	postID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get post ID: %v", err)
	}

	return postID, filename
}

// CreateTestVote records a vote and bumps the matching counter, the
// same way the handler does.
func CreateTestVote(t *testing.T, conn *sql.DB, postID int64, userEmail, choice string) {
	t.Helper()

	if _, err := conn.Exec(`
		INSERT INTO votes (post_id, user_email, vote_choice) VALUES (?, ?, ?)
	`, postID, userEmail, choice); err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	column := "votes_a"
	if choice == "B" {
		column = "votes_b"
	}
	if _, err := conn.Exec(`UPDATE posts SET `+column+` = `+column+` + 1 WHERE id = ?`, postID); err != nil {
		t.Fatalf("Failed to increment test vote count: %v", err)
	}
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
