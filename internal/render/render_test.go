// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/session"
	"github.com/olegiv/suratku/web"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func embeddedTemplates(t *testing.T) fs.FS {
	t.Helper()
	tfs, err := web.TemplatesFS()
	if err != nil {
		t.Fatalf("web.TemplatesFS() error = %v", err)
	}
	return tfs
}

func newTestRenderer(t *testing.T, fq *flash.Queue) *Renderer {
	t.Helper()
	r, err := New(Config{TemplatesFS: embeddedTemplates(t), Flash: fq})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestNew_ParsesAllPages(t *testing.T) {
	r, err := New(Config{TemplatesFS: embeddedTemplates(t)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, name := range []string{
		"public/home",
		"auth/login",
		"admin/dashboard",
		"admin/letter_list",
		"admin/letter_form",
		"admin/confirm_delete",
		"errors/404",
		"errors/500",
	} {
		if !r.Has(name) {
			t.Errorf("template %s not parsed", name)
		}
	}
}

func TestNew_NoTemplates(t *testing.T) {
	if _, err := New(Config{TemplatesFS: fstest.MapFS{}}); err == nil {
		t.Fatal("New() should fail without templates")
	}
}

func TestNew_UnrootedFS(t *testing.T) {
	// The raw embed holds a single templates/ directory at its root.
	_, err := New(Config{TemplatesFS: web.Templates})
	if err == nil {
		t.Fatal("New() should fail when the FS is not rooted at the templates directory")
	}
	if !strings.Contains(err.Error(), "partials") {
		t.Errorf("error = %v, want it to name the missing directory", err)
	}
}

func TestNew_MissingPageGroup(t *testing.T) {
	tfs := fstest.MapFS{
		"layouts/base.html":    {Data: []byte(`{{define "base"}}{{block "main" .}}{{end}}{{end}}`)},
		"layouts/admin.html":   {Data: []byte(`{{define "main"}}{{template "content" .}}{{end}}`)},
		"partials/flash.html":  {Data: []byte(`{{define "flash"}}{{end}}`)},
		"admin/dashboard.html": {Data: []byte(`{{define "content"}}ok{{end}}`)},
		"auth/login.html":      {Data: []byte(`{{define "main"}}login{{end}}`)},
		"public/home.html":     {Data: []byte(`{{define "main"}}home{{end}}`)},
	}

	_, err := New(Config{TemplatesFS: tfs})
	if err == nil {
		t.Fatal("New() should fail when the errors/ directory is missing")
	}
	if !strings.Contains(err.Error(), "errors") {
		t.Errorf("error = %v, want it to name the errors group", err)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := newTestRenderer(t, nil)
	err := r.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "admin/missing", TemplateData{})
	if err == nil {
		t.Fatal("Render() should fail for an unknown template")
	}
}

func TestRender_DrainsFlash(t *testing.T) {
	sm := session.NewMemory(true)
	fq := flash.New(sm)
	r := newTestRenderer(t, fq)

	var body string
	h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fq.Error(req.Context(), "Email tidak valid")
		fq.Success(req.Context(), "Tersimpan")

		rr := httptest.NewRecorder()
		if err := r.Render(rr, req, "auth/login", TemplateData{Title: "Login", Data: struct{ Email string }{"a@b.c"}}); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		body = rr.Body.String()

		if left := fq.Pop(req.Context()); !left.Empty() {
			t.Errorf("flash not drained: %+v", left)
		}
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	for _, want := range []string{"Email tidak valid", "Tersimpan", `value="a@b.c"`, `lang="id"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderStatus_AdminLayout(t *testing.T) {
	r := newTestRenderer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/surat-masuk/hapus/4", nil)
	ctx := middleware.WithIdentity(req.Context(), session.Identity{UserID: 1, Name: "Budi <script>", Role: "admin"})
	ctx = middleware.WithLang(ctx, "en")
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	err := r.RenderStatus(rr, req, http.StatusOK, "admin/confirm_delete", TemplateData{
		Title: "Delete",
		Data: struct {
			Label      string
			Action     string
			CancelPath string
		}{"005/IN/2024", "/admin/surat-masuk/hapus/4", "/admin/surat-masuk"},
	})
	if err != nil {
		t.Fatalf("RenderStatus() error = %v", err)
	}

	body := rr.Body.String()
	if strings.Contains(body, "<script>") {
		t.Error("user name must be escaped")
	}
	for _, want := range []string{"005/IN/2024", `action="/admin/surat-masuk/hapus/4"`, "Administrator", `lang="en"`, `class="active"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRenderStatus_NotFound(t *testing.T) {
	r := newTestRenderer(t, nil)
	rr := httptest.NewRecorder()

	if err := r.RenderStatus(rr, httptest.NewRequest(http.MethodGet, "/nope", nil), http.StatusNotFound, "errors/404", TemplateData{}); err != nil {
		t.Fatalf("RenderStatus() error = %v", err)
	}
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Halaman Tidak Ditemukan") {
		t.Error("404 page should carry the not-found title")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		lang string
		in   any
		want string
	}{
		{"id", "2024-01-02", "2 Januari 2024"},
		{"id", "2023-08-17", "17 Agustus 2023"},
		{"en", "2023-08-17", "17 August 2023"},
		{"fr", "2023-05-09", "9 Mei 2023"},
		{"id", time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), "31 Desember 2024"},
		{"id", "17/08/2023", "17/08/2023"},
		{"id", time.Time{}, ""},
		{"id", 42, "42"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.lang, tt.in); got != tt.want {
			t.Errorf("FormatDate(%q, %v) = %q, want %q", tt.lang, tt.in, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	if got := FormatDateTime("id", ts); got != "5 Maret 2024 14:07" {
		t.Errorf("FormatDateTime() = %q", got)
	}
	if got := FormatDateTime("id", time.Time{}); got != "" {
		t.Errorf("FormatDateTime(zero) = %q", got)
	}
}
