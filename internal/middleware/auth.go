// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// anti-forgery, login throttling and request context handling.
package middleware

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request data.
const (
	ContextKeyIdentity ContextKey = "identity"
	ContextKeyLanguage ContextKey = "language"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/auth/login"

// RequireAuth creates middleware that requires an authenticated session.
// Anonymous requests get an error flash and a redirect to the login form.
func RequireAuth(sm *scs.SessionManager, fq *flash.Queue) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := session.Current(r.Context(), sm)
			if !id.IsAuthenticated() {
				fq.Error(r.Context(), i18n.T(GetLang(r), "auth.login_required"))
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// LoadIdentity attaches the session identity, if any, to the request context
// without enforcing authentication. Used on public pages.
func LoadIdentity(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := session.Current(r.Context(), sm)
			if id.IsAuthenticated() {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithIdentity returns a copy of ctx carrying the identity.
func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// GetIdentity retrieves the current identity from the request context.
// The zero Identity is returned for anonymous requests.
func GetIdentity(r *http.Request) session.Identity {
	id, _ := r.Context().Value(ContextKeyIdentity).(session.Identity)
	return id
}

// GetUserID returns the current user's ID from context, or 0 if not found.
func GetUserID(r *http.Request) int64 {
	return GetIdentity(r).UserID
}
