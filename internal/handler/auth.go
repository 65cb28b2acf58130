// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/suratku/internal/auth"
	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/model"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/service"
	"github.com/olegiv/suratku/internal/session"
	"github.com/olegiv/suratku/internal/store"
	"github.com/olegiv/suratku/internal/validation"
)

// LoginView is the data of the login page.
type LoginView struct {
	Email string
}

// AuthHandler handles authentication routes.
type AuthHandler struct {
	queries        *store.Queries
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	flash          *flash.Queue
	eventService   *service.EventService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, renderer *render.Renderer, sm *scs.SessionManager, fq *flash.Queue, events *service.EventService) *AuthHandler {
	return &AuthHandler{
		queries:        store.New(db),
		renderer:       renderer,
		sessionManager: sm,
		flash:          fq,
		eventService:   events,
	}
}

// LoginForm renders the login page.
// Already-authenticated users go straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if session.Current(r.Context(), h.sessionManager).IsAuthenticated() {
		http.Redirect(w, r, redirectDashboard, http.StatusSeeOther)
		return
	}

	lang := middleware.GetLang(r)
	renderPage(w, r, h.renderer, tmplLogin, render.TemplateData{
		Title: i18n.T(lang, "page.login"),
		Data:  LoginView{},
	})
}

// Login handles the login form submission.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	lang := middleware.GetLang(r)

	if err := r.ParseForm(); err != nil {
		flashError(w, r, h.flash, redirectLogin, i18n.T(lang, "validation.invalid"))
		return
	}

	// Passwords are taken verbatim; only the email is trimmed.
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if msg, ok := validation.Validate(validation.Fields{
		"email":    email,
		"password": password,
	}, validation.LoginRules); !ok {
		flashError(w, r, h.flash, redirectLogin, i18n.T(lang, msg))
		return
	}

	clientIP := middleware.ClientIP(r)
	userAgent := r.UserAgent()
	meta := map[string]any{"email": email}

	user, err := h.queries.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("login attempt for non-existent user", "email", email)
			h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Login failed: user not found", nil, clientIP, userAgent, meta)
			flashError(w, r, h.flash, redirectLogin, i18n.T(lang, "auth.invalid_credentials"))
			return
		}
		flashServerError(w, r, h.flash, redirectLogin, "database error during login", "error", err)
		return
	}

	if !user.IsApproved {
		h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Login failed: account not approved", &user.ID, clientIP, userAgent, meta)
		flashError(w, r, h.flash, redirectLogin, i18n.T(lang, "auth.not_approved"))
		return
	}

	valid, err := auth.CheckPassword(password, user.PasswordHash)
	if err != nil {
		slog.Error("password check error", "error", err, "user_id", user.ID)
	}
	if err != nil || !valid {
		h.eventService.LogAuthEvent(r.Context(), model.EventLevelWarning, "Login failed: invalid password", &user.ID, clientIP, userAgent, meta)
		flashError(w, r, h.flash, redirectLogin, i18n.T(lang, "auth.invalid_credentials"))
		return
	}

	// Re-hash bcrypt and outdated argon2 hashes with current parameters
	if auth.NeedsRehash(user.PasswordHash) {
		h.rehash(r, user.ID, password)
	}

	// Regenerate session ID to prevent session fixation
	if err := session.Login(r.Context(), h.sessionManager, session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}); err != nil {
		flashServerError(w, r, h.flash, redirectLogin, "session renewal error", "error", err)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "email", user.Email)
	h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo, "User logged in", &user.ID, clientIP, userAgent, meta)

	http.Redirect(w, r, redirectDashboard, http.StatusSeeOther)
}

func (h *AuthHandler) rehash(r *http.Request, userID int64, password string) {
	newHash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password for upgrade", "error", err, "user_id", userID)
		return
	}
	if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
		PasswordHash: newHash,
		UpdatedAt:    time.Now().UTC(),
		ID:           userID,
	}); err != nil {
		slog.Error("failed to re-hash password", "error", err, "user_id", userID)
		return
	}
	slog.Info("password re-hashed with updated parameters", "user_id", userID)
}

// Logout destroys the session unconditionally and returns to the login form.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id := session.Current(r.Context(), h.sessionManager)

	if id.IsAuthenticated() {
		userID := id.UserID
		h.eventService.LogAuthEvent(r.Context(), model.EventLevelInfo, "User logged out", &userID, middleware.ClientIP(r), r.UserAgent(), nil)
	}

	if err := session.Logout(r.Context(), h.sessionManager); err != nil {
		slog.Error("session destroy error", "error", err)
	}

	slog.Info("user logged out", "user_id", id.UserID)
	http.Redirect(w, r, redirectLogin, http.StatusSeeOther)
}
