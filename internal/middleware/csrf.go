// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"

	"filippo.io/csrf/gorilla"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/service"
)

// CSRFConfig holds configuration for anti-forgery protection.
// filippo.io/csrf/gorilla checks Fetch metadata and Origin headers rather
// than tokens, so no form field or cookie is involved.
type CSRFConfig struct {
	// AuthKey is kept for API compatibility with gorilla/csrf; it is the
	// session secret.
	AuthKey []byte

	// ErrorHandler is called when the check fails.
	ErrorHandler http.Handler

	// TrustedOrigins are host[:port] values allowed to post cross-origin.
	TrustedOrigins []string
}

// DefaultCSRFConfig returns a CSRFConfig with sensible defaults.
func DefaultCSRFConfig(authKey []byte, trusted []string, isDev bool) CSRFConfig {
	cfg := CSRFConfig{
		AuthKey:        authKey,
		TrustedOrigins: append([]string(nil), trusted...),
	}

	// csrf library expects host-only values, not full URLs
	if isDev {
		cfg.TrustedOrigins = append(cfg.TrustedOrigins,
			"localhost:50000",
			"127.0.0.1:50000",
		)
	}

	return cfg
}

// CSRF returns a middleware that rejects cross-origin unsafe requests.
func CSRF(cfg CSRFConfig) func(http.Handler) http.Handler {
	var opts []csrf.Option

	if cfg.ErrorHandler != nil {
		opts = append(opts, csrf.ErrorHandler(cfg.ErrorHandler))
	} else {
		opts = append(opts, csrf.ErrorHandler(http.HandlerFunc(csrfForbidden)))
	}

	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}

	return csrf.Protect(cfg.AuthKey, opts...)
}

// CSRFErrorHandler flashes the security token error, records a security
// event and sends the visitor to the login form.
func CSRFErrorHandler(fq *flash.Queue, events *service.EventService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reason := failureReason(r)
		ip := ClientIP(r)

		slog.Info("anti-forgery check failed",
			"reason", reason,
			"method", r.Method,
			"path", r.URL.Path,
			"origin", r.Header.Get("Origin"),
			"sec_fetch_site", r.Header.Get("Sec-Fetch-Site"),
			"ip", ip,
		)
		if events != nil {
			events.LogSecurityEvent(r.Context(), "Anti-forgery check failed", ip, map[string]any{
				"reason": reason,
				"method": r.Method,
				"path":   r.URL.Path,
			})
		}

		fq.Error(r.Context(), i18n.T(GetLang(r), "error.csrf"))
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
	})
}

func failureReason(r *http.Request) string {
	if reason := csrf.FailureReason(r); reason != nil {
		return reason.Error()
	}
	return "unknown"
}

// csrfForbidden is used when no error handler is configured.
func csrfForbidden(w http.ResponseWriter, r *http.Request) {
	slog.Info("anti-forgery check failed", "reason", failureReason(r), "path", r.URL.Path)
	http.Error(w, "Forbidden", http.StatusForbidden)
}
