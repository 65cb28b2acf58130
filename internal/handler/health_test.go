// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/suratku/internal/testutil"
	"github.com/olegiv/suratku/internal/version"
)

func TestHealth(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	h := NewHealthHandler(db, version.Info{Version: "1.2.3"})

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get(HeaderContentType); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var status HealthStatus
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", status.Status)
	}
	if status.Version != "1.2.3" {
		t.Errorf("Version = %q", status.Version)
	}
	if status.Checks["database"].Status != "healthy" {
		t.Errorf("database check = %+v", status.Checks["database"])
	}
}

func TestHealth_DatabaseDown(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	h := NewHealthHandler(db, version.Info{})
	_ = db.Close()

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var status HealthStatus
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "degraded" {
		t.Errorf("Status = %q, want degraded", status.Status)
	}
	if msg := status.Checks["database"].Message; msg != "database unreachable" {
		t.Errorf("Message = %q", msg)
	}
}
