// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/service"
)

// DashboardHandler renders the landing page of the protected area.
type DashboardHandler struct {
	dashboard *service.DashboardService
	renderer  *render.Renderer
	flash     *flash.Queue
	now       func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *sql.DB, renderer *render.Renderer, fq *flash.Queue) *DashboardHandler {
	return &DashboardHandler{
		dashboard: service.NewDashboardService(db),
		renderer:  renderer,
		flash:     fq,
		now:       time.Now,
	}
}

// Dashboard handles GET /admin/dashboard.
// Any storage failure sends the user back to the login form.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)
	userID := middleware.GetUserID(r)

	data, err := h.dashboard.Load(r.Context(), userID, lang, h.now())
	if err != nil {
		// The login form sends authenticated users back here, so a storage
		// error that persists bounces between the two pages and queues one
		// more flash per hop until the user leaves for another page.
		slog.Error("failed to load dashboard", "error", err, "user_id", userID)
		flashError(w, r, h.flash, redirectLogin, i18n.T(lang, "error.dashboard"))
		return
	}

	renderPage(w, r, h.renderer, tmplDashboard, render.TemplateData{
		Title: i18n.T(lang, "page.dashboard"),
		Data:  data,
	})
}
