// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteHealth is the liveness endpoint.
	RouteHealth = "/health"
	// RouteStatic is the embedded asset prefix.
	RouteStatic = "/static"

	// RouteLogin is the login route.
	RouteLogin = "/auth/login"
	// RouteLogout is the logout route.
	RouteLogout = "/auth/logout"

	// RouteAdmin is the protected area prefix.
	RouteAdmin = "/admin"
	// RouteDashboard is the dashboard route inside RouteAdmin.
	RouteDashboard = "/dashboard"
	// RouteSuratMasuk is the incoming letters route inside RouteAdmin.
	RouteSuratMasuk = "/surat-masuk"
	// RouteSuratKeluar is the outgoing letters route inside RouteAdmin.
	RouteSuratKeluar = "/surat-keluar"

	// RouteSuffixAdd is the suffix for create routes.
	RouteSuffixAdd = "/tambah"
	// RouteSuffixEdit is the suffix for edit routes.
	RouteSuffixEdit = "/edit/{id}"
	// RouteSuffixDelete is the suffix for delete routes.
	RouteSuffixDelete = "/hapus/{id}"
)

const (
	redirectLogin       = RouteLogin
	redirectDashboard   = RouteAdmin + RouteDashboard
	redirectSuratMasuk  = RouteAdmin + RouteSuratMasuk
	redirectSuratKeluar = RouteAdmin + RouteSuratKeluar
)

// Template names.
const (
	tmplHome          = "public/home"
	tmplLogin         = "auth/login"
	tmplDashboard     = "admin/dashboard"
	tmplLetterList    = "admin/letter_list"
	tmplLetterForm    = "admin/letter_form"
	tmplConfirmDelete = "admin/confirm_delete"
	tmplNotFound      = "errors/404"
	tmplServerError   = "errors/500"
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
