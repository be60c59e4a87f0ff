// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/name-picker/handlers"
	"github.com/danielhkuo/name-picker/middleware"
	"github.com/danielhkuo/name-picker/session"
)

// Banner is the body served at GET /
const Banner = "name-picker API v1"

func NewRouter(mgr *session.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(mgr)
	resultsHandler := handlers.NewResultsHandler(mgr)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("GET /session", middleware.WithLogging(votingHandler.GetSession))
	mux.HandleFunc("POST /session/draw", middleware.WithLogging(votingHandler.Draw))
	mux.HandleFunc("POST /session/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("POST /session/view", middleware.WithLogging(votingHandler.SetView))
	mux.HandleFunc("POST /session/reset", middleware.WithLogging(votingHandler.Reset))

	// Results
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/export.csv", middleware.WithLogging(resultsHandler.ExportCSV))
	mux.HandleFunc("GET /results/mail", middleware.WithLogging(resultsHandler.GetMail))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		status := mgr.Status()
		w.Write([]byte(Banner + "\n" +
			humanize.Comma(int64(status.Remaining)) + " names remaining, " +
			humanize.Comma(int64(status.VoteCount)) + " voted\n"))
	})

	return mux
}
