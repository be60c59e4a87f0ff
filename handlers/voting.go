// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/name-picker/middleware"
	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/session"
)

type VotingHandler struct {
	mgr *session.Manager
}

func NewVotingHandler(mgr *session.Manager) *VotingHandler {
	return &VotingHandler{mgr: mgr}
}

// GetSession handles GET /session
func (h *VotingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.mgr.Status())
}

// Draw handles POST /session/draw
// Returns 409 if a name is already being presented
func (h *VotingHandler) Draw(w http.ResponseWriter, r *http.Request) {
	status, err := h.mgr.Draw()
	if errors.Is(err, session.ErrInvalidState) {
		middleware.ErrorResponse(w, http.StatusConflict, "A name is already being presented")
		return
	}
	if err != nil {
		slog.Error("failed to draw name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to draw name")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// CastVote handles POST /session/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Vote == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote is required")
		return
	}

	status, err := h.mgr.Vote(req.Vote)
	switch {
	case errors.Is(err, session.ErrInvalidVote):
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote must be up or down")
		return
	case errors.Is(err, session.ErrInvalidState):
		middleware.ErrorResponse(w, http.StatusConflict, "No name is being presented")
		return
	case err != nil:
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, status)
}

// SetView handles POST /session/view
// Switches between the voting and results views
func (h *VotingHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req models.SetViewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.View {
	case models.ViewResults:
		middleware.JSONResponse(w, http.StatusOK, h.mgr.SetReviewing(true))
	case models.ViewVoting:
		middleware.JSONResponse(w, http.StatusOK, h.mgr.SetReviewing(false))
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "view must be voting or results")
	}
}

// Reset handles POST /session/reset
// Clears all votes and starts over with the full dataset
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	status := h.mgr.Reset()
	middleware.JSONResponse(w, http.StatusOK, status)
}
