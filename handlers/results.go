// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/name-picker/export"
	"github.com/danielhkuo/name-picker/middleware"
	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/session"
)

const csvFilename = "baby_name_votes.csv"

type ResultsHandler struct {
	mgr *session.Manager
}

func NewResultsHandler(mgr *session.Manager) *ResultsHandler {
	return &ResultsHandler{mgr: mgr}
}

// GetResults handles GET /results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	liked, disliked := h.mgr.Results()
	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Liked:    liked,
		Disliked: disliked,
	})
}

// ExportCSV handles GET /results/export.csv
func (h *ResultsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	liked, disliked := h.mgr.Results()

	data, err := export.CSV(liked, disliked)
	if err != nil {
		slog.Error("failed to export CSV", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export results")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write CSV response", "error", err)
	}
}

// GetMail handles GET /results/mail?to=
// Returns a subject/body pair and a mailto: link for a mail client
func (h *ResultsHandler) GetMail(w http.ResponseWriter, r *http.Request) {
	liked, disliked := h.mgr.Results()
	msg := export.Mail(liked, disliked)

	middleware.JSONResponse(w, http.StatusOK, models.MailResponse{
		Subject:   msg.Subject,
		Body:      msg.Body,
		MailtoURL: msg.MailtoURL(r.URL.Query().Get("to")),
	})
}
