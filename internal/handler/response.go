// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
)

// flashError queues an error flash message and redirects to the given URL.
// Uses http.StatusSeeOther (303) so the browser follows with a GET.
func flashError(w http.ResponseWriter, r *http.Request, fq *flash.Queue, url, message string) {
	fq.Error(r.Context(), message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashSuccess queues a success flash message and redirects to the given URL.
func flashSuccess(w http.ResponseWriter, r *http.Request, fq *flash.Queue, url, message string) {
	fq.Success(r.Context(), message)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// flashServerError logs err and flashes the generic storage failure message.
// Internal error text never reaches the user.
func flashServerError(w http.ResponseWriter, r *http.Request, fq *flash.Queue, url, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	flashError(w, r, fq, url, i18n.T(middleware.GetLang(r), "error.server"))
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// renderPage renders name and falls back to a plain 500 when rendering fails.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, name string, data render.TemplateData) {
	if err := renderer.Render(w, r, name, data); err != nil {
		logAndInternalError(w, "failed to render template", "template", name, "error", err)
	}
}

// parseIDParam parses the {id} URL parameter. ok is false for missing,
// malformed or non-positive ids.
func parseIDParam(r *http.Request) (id int64, ok bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
