// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
)

// PagesHandler serves the public landing page and the error pages.
type PagesHandler struct {
	renderer *render.Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(renderer *render.Renderer) *PagesHandler {
	return &PagesHandler{renderer: renderer}
}

// Home handles GET /. Authenticated visitors go to the dashboard.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	if middleware.GetIdentity(r).IsAuthenticated() {
		http.Redirect(w, r, redirectDashboard, http.StatusSeeOther)
		return
	}
	renderPage(w, r, h.renderer, tmplHome, render.TemplateData{})
}

// NotFound renders the 404 page.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound, tmplNotFound, "page.not_found")
}

// ServerError renders the generic 500 page.
func (h *PagesHandler) ServerError(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusInternalServerError, tmplServerError, "page.server_error")
}

func (h *PagesHandler) renderError(w http.ResponseWriter, r *http.Request, status int, name, titleKey string) {
	err := h.renderer.RenderStatus(w, r, status, name, render.TemplateData{
		Title: i18n.T(middleware.GetLang(r), titleKey),
	})
	if err != nil {
		slog.Error("failed to render error page", "template", name, "error", err)
		http.Error(w, http.StatusText(status), status)
	}
}
