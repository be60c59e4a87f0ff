// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/name-picker/db"
	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/session"
	"github.com/danielhkuo/name-picker/store"
)

// Ann and Bo make up TestNames
var (
	Ann = models.NameRecord{Name: "Ann", Gender: models.GenderGirl, Year: 2020}
	Bo  = models.NameRecord{Name: "Bo", Gender: models.GenderBoy, Year: 2021}
)

// TestNames returns the two-name dataset used across handler tests
func TestNames() []models.NameRecord {
	return []models.NameRecord{Ann, Bo}
}

// FirstPicker always draws the head of the pool, making draws predictable
func FirstPicker(n int) int {
	return 0
}

// SetupTestStore creates a fresh sqlite-backed store in a temp directory
func SetupTestStore(t *testing.T) *store.SQL {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn), "failed to create schema")

	return store.NewSQL(conn)
}

// NewTestManager builds a manager over s with FirstPicker
func NewTestManager(t *testing.T, s store.Store, names []models.NameRecord) *session.Manager {
	t.Helper()
	return session.NewManager(s, names, FirstPicker)
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
	assert.Equal(t, expected, w.Code, "body: %s", w.Body.String())
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "failed to decode JSON response")
}
