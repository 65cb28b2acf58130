// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticCache(t *testing.T) {
	tests := []struct {
		maxAge int
		want   string
	}{
		{86400, "public, max-age=86400"},
		{0, "no-cache"},
	}

	for _, tt := range tests {
		var called bool
		h := StaticCache(tt.maxAge)(okHandler(&called))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))

		if got := rr.Header().Get("Cache-Control"); got != tt.want {
			t.Errorf("maxAge %d: Cache-Control = %q, want %q", tt.maxAge, got, tt.want)
		}
		if !called {
			t.Errorf("maxAge %d: next handler not called", tt.maxAge)
		}
	}
}

func TestStripTrailingSlash(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantLoc  string
	}{
		{"root untouched", http.MethodGet, "/", http.StatusOK, ""},
		{"no slash", http.MethodGet, "/admin/dashboard", http.StatusOK, ""},
		{"trailing slash", http.MethodGet, "/admin/surat-masuk/", http.StatusMovedPermanently, "/admin/surat-masuk"},
		{"keeps query", http.MethodGet, "/auth/login/?lang=en", http.StatusMovedPermanently, "/auth/login?lang=en"},
		{"collapses slashes", http.MethodGet, "//evil.example//", http.StatusMovedPermanently, "/evil.example"},
		{"post passes through", http.MethodPost, "/auth/login/", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			rr := httptest.NewRecorder()
			StripTrailingSlash(okHandler(&called)).ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if loc := rr.Header().Get("Location"); loc != tt.wantLoc {
				t.Errorf("Location = %q, want %q", loc, tt.wantLoc)
			}
		})
	}
}
