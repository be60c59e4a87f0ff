// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mgr := testutil.NewTestManager(t, testutil.SetupTestStore(t), testutil.TestNames())
	return NewRouter(mgr)
}

func serve(mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := serve(newTestMux(t), httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRootEndpoint(t *testing.T) {
	w := serve(newTestMux(t), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Banner+"\n1 names remaining, 0 voted\n", w.Body.String())
}

func TestUnknownPath(t *testing.T) {
	w := serve(newTestMux(t), httptest.NewRequest("GET", "/names", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)

	// 400 and 409 are valid responses depending on handler logic
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/session"},
		{"POST", "/session/draw"},
		{"POST", "/session/votes"},
		{"POST", "/session/view"},
		{"POST", "/session/reset"},

		{"GET", "/results"},
		{"GET", "/results/export.csv"},
		{"GET", "/results/mail"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(mux, httptest.NewRequest(tc.method, tc.path, nil))

			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code)
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/session/votes"},
		{"DELETE", "/session"},
		{"POST", "/results"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(mux, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestVoteThroughRouter(t *testing.T) {
	mux := newTestMux(t)

	w := serve(mux, testutil.MakeRequest("POST", "/session/votes", models.CastVoteRequest{Vote: models.VoteUp}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "logging middleware should tag the response")

	w = serve(mux, testutil.MakeRequest("GET", "/results/export.csv", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Ann,Girl,2020,Liked")
}
