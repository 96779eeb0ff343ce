// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/candidate-scoring/auth"
	"github.com/danielhkuo/candidate-scoring/cliparse"
	"github.com/danielhkuo/candidate-scoring/db"
)

// TestDBURLEnv names the variable that points tests at PostgreSQL.
// Without it every test gets its own SQLite file.
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	var (
		conn *sql.DB
		err  error
	)
	if url := os.Getenv(TestDBURLEnv); url != "" {
		conn, err = db.Open(ctx, db.TypePostgres, url)
		require.NoError(t, err, "failed to open test database")
		require.NoError(t, db.DropSchema(ctx, conn), "failed to clean database")
	} else {
		path := filepath.Join(t.TempDir(), "test.db")
		conn, err = db.Open(ctx, db.TypeSQLite, path)
		require.NoError(t, err, "failed to open test database")
	}
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn), "failed to create schema")
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  "test.db",
		DatabaseType: db.TypeSQLite,
	}
}

// CreateTestUser inserts a user and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, id, name string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO users (id, email, display_name, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, id+"@university.edu", name, time.Now().UTC())
	require.NoError(t, err, "failed to create test user")

	return id
}

// CreateTestPosition inserts a position and returns its id
func CreateTestPosition(t *testing.T, conn *sql.DB, title, createdBy string) string {
	t.Helper()

	positionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO positions (id, title, created_by, created_at)
		VALUES ($1, $2, $3, $4)
	`, positionID, title, createdBy, time.Now().UTC())
	require.NoError(t, err, "failed to create test position")

	return positionID
}

// AddTestCandidate inserts a candidate under a position and returns its id
func AddTestCandidate(t *testing.T, conn *sql.DB, positionID, name string) string {
	t.Helper()

	candidateID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO candidates (id, position_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`, candidateID, positionID, name, time.Now().UTC())
	require.NoError(t, err, "failed to create test candidate")

	return candidateID
}

// AddTestScore inserts a score row directly, bypassing validation
func AddTestScore(t *testing.T, conn *sql.DB, candidateID, interviewerID string, handGestures, stayedAwake int) string {
	t.Helper()

	scoreID := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn.Exec(`
		INSERT INTO scores (id, candidate_id, interviewer_id, hand_gestures, stayed_awake, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, scoreID, candidateID, interviewerID, handGestures, stayedAwake, now)
	require.NoError(t, err, "failed to create test score")

	return scoreID
}

// CountRows returns the number of rows in table matching the optional where clause
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	require.NoError(t, conn.QueryRow(query, args...).Scan(&n))
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
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

// AsUser returns SSO headers identifying the given user
func AsUser(id, name string) map[string]string {
	return map[string]string{
		auth.HeaderUserID: id,
		auth.HeaderEmail:  id + "@university.edu",
		auth.HeaderName:   name,
	}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
