// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package web

import (
	"io/fs"
	"testing"
)

func TestTemplatesFS(t *testing.T) {
	tfs, err := TemplatesFS()
	if err != nil {
		t.Fatalf("TemplatesFS() error = %v", err)
	}

	for _, name := range []string{
		"layouts/base.html",
		"layouts/admin.html",
		"partials/flash.html",
		"admin/dashboard.html",
		"auth/login.html",
		"public/home.html",
		"errors/404.html",
		"errors/500.html",
	} {
		if _, err := fs.Stat(tfs, name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	if err != nil {
		t.Fatalf("StaticFS() error = %v", err)
	}
	if _, err := fs.Stat(sfs, "css/app.css"); err != nil {
		t.Errorf("css/app.css: %v", err)
	}
}
