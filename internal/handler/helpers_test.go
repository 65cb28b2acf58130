// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/service"
	"github.com/olegiv/suratku/internal/session"
	"github.com/olegiv/suratku/internal/testutil"
	"github.com/olegiv/suratku/web"
)

// testEnv bundles a migrated database, an in-memory session manager and a
// renderer over the embedded templates. Requests sent through do share one
// session cookie, like a browser.
type testEnv struct {
	db       *sql.DB
	sm       *scs.SessionManager
	flash    *flash.Queue
	renderer *render.Renderer
	events   *service.EventService
	cookie   *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	sm := session.NewMemory(true)
	fq := flash.New(sm)

	templatesFS, err := web.TemplatesFS()
	if err != nil {
		t.Fatalf("web.TemplatesFS: %v", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templatesFS, Flash: fq})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	return &testEnv{
		db:       db,
		sm:       sm,
		flash:    fq,
		renderer: renderer,
		events:   service.NewEventService(db),
	}
}

// do serves req through LoadAndSave and keeps the session cookie.
func (e *testEnv) do(t *testing.T, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if e.cookie != nil {
		req.AddCookie(e.cookie)
	}
	rr := httptest.NewRecorder()
	e.sm.LoadAndSave(h).ServeHTTP(rr, req)
	for _, c := range rr.Result().Cookies() {
		if c.Name == session.CookieName {
			e.cookie = c
		}
	}
	return rr
}

// current returns the identity stored in the shared session.
func (e *testEnv) current(t *testing.T) session.Identity {
	t.Helper()
	var id session.Identity
	e.do(t, func(w http.ResponseWriter, r *http.Request) {
		id = session.Current(r.Context(), e.sm)
	}, httptest.NewRequest(http.MethodGet, "/", nil))
	return id
}

// login stores an identity in the shared session.
func (e *testEnv) login(t *testing.T, id session.Identity) {
	t.Helper()
	e.do(t, func(w http.ResponseWriter, r *http.Request) {
		if err := session.Login(r.Context(), e.sm, id); err != nil {
			t.Fatalf("session.Login: %v", err)
		}
	}, httptest.NewRequest(http.MethodGet, "/", nil))
}

// popFlash drains the flash queue of the shared session.
func (e *testEnv) popFlash(t *testing.T) flash.Messages {
	t.Helper()
	var m flash.Messages
	e.do(t, func(w http.ResponseWriter, r *http.Request) {
		m = e.flash.Pop(r.Context())
	}, httptest.NewRequest(http.MethodGet, "/", nil))
	return m
}

func (e *testEnv) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	if err := e.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// postForm builds a form POST request.
func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(HeaderContentType, "application/x-www-form-urlencoded")
	return req
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asUser attaches an authenticated identity to the request context, as
// RequireAuth does.
func asUser(req *http.Request, userID int64, name string) *http.Request {
	return req.WithContext(middleware.WithIdentity(req.Context(), session.Identity{
		UserID: userID,
		Name:   name,
		Role:   "staff",
	}))
}

func assertRedirect(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rr.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if loc := rr.Header().Get("Location"); loc != want {
		t.Errorf("Location = %q, want %q", loc, want)
	}
}

func assertFlash(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("flash = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("flash[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
