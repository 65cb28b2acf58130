// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package server assembles the HTTP router: middleware stack, public and
// authenticated routes, static assets and error pages.
package server

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/handler"
	"github.com/olegiv/suratku/internal/middleware"
	"github.com/olegiv/suratku/internal/render"
	"github.com/olegiv/suratku/internal/service"
	"github.com/olegiv/suratku/internal/version"
	"github.com/olegiv/suratku/web"
)

// Static assets are cached for one day outside development.
const staticMaxAge = 86400

// Deps are the collaborators shared by every route.
type Deps struct {
	DB              *sql.DB
	Sessions        *scs.SessionManager
	Flash           *flash.Queue
	Renderer        *render.Renderer
	Events          *service.EventService
	LoginProtection *middleware.LoginProtection
	Version         version.Info

	// SessionSecret keys the anti-forgery middleware.
	SessionSecret  []byte
	TrustedOrigins []string
	IsDevelopment  bool
}

// letterRoutes are the five route shapes shared by both letter kinds.
type letterRoutes struct {
	List          http.HandlerFunc
	NewForm       http.HandlerFunc
	Create        http.HandlerFunc
	EditForm      http.HandlerFunc
	Update        http.HandlerFunc
	ConfirmDelete http.HandlerFunc
	Delete        http.HandlerFunc
}

// registerLetters mounts list, tambah, edit and hapus under base.
func registerLetters(r chi.Router, base string, h letterRoutes) {
	r.Get(base, h.List)
	r.Get(base+handler.RouteSuffixAdd, h.NewForm)
	r.Post(base+handler.RouteSuffixAdd, h.Create)
	r.Get(base+handler.RouteSuffixEdit, h.EditForm)
	r.Post(base+handler.RouteSuffixEdit, h.Update)
	r.Get(base+handler.RouteSuffixDelete, h.ConfirmDelete)
	r.Post(base+handler.RouteSuffixDelete, h.Delete)
}

// NewRouter builds the application handler.
func NewRouter(d Deps) (http.Handler, error) {
	staticFS, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("getting static fs: %w", err)
	}

	pagesHandler := handler.NewPagesHandler(d.Renderer)

	// Error pages run outside the route groups, so they load the session
	// (for the flash partial) and the visitor's language themselves.
	withSession := func(h http.HandlerFunc) http.Handler {
		return d.Sessions.LoadAndSave(middleware.Language(h))
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(middleware.Recoverer(withSession(pagesHandler.ServerError)))
	r.Use(chimw.GetHead)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(d.IsDevelopment)))

	healthHandler := handler.NewHealthHandler(d.DB, d.Version)
	r.Get(handler.RouteHealth, healthHandler.Health)

	maxAge := staticMaxAge
	if d.IsDevelopment {
		maxAge = 0
	}
	staticHandler := middleware.StaticCache(maxAge)(
		http.StripPrefix(handler.RouteStatic+"/", http.FileServer(http.FS(staticFS))))
	r.Handle(handler.RouteStatic+"/*", staticHandler)

	csrfConfig := middleware.DefaultCSRFConfig(d.SessionSecret, d.TrustedOrigins, d.IsDevelopment)
	csrfConfig.ErrorHandler = middleware.CSRFErrorHandler(d.Flash, d.Events)

	authHandler := handler.NewAuthHandler(d.DB, d.Renderer, d.Sessions, d.Flash, d.Events)
	dashboardHandler := handler.NewDashboardHandler(d.DB, d.Renderer, d.Flash)
	masukHandler := handler.NewSuratMasukHandler(d.DB, d.Renderer, d.Flash)
	keluarHandler := handler.NewSuratKeluarHandler(d.DB, d.Renderer, d.Flash)

	r.Group(func(r chi.Router) {
		r.Use(d.Sessions.LoadAndSave)
		r.Use(middleware.Language)
		r.Use(middleware.CSRF(csrfConfig))

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoadIdentity(d.Sessions))

			r.Get(handler.RouteRoot, pagesHandler.Home)
			r.Get(handler.RouteLogin, authHandler.LoginForm)
			if d.LoginProtection != nil {
				r.With(d.LoginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
			} else {
				r.Post(handler.RouteLogin, authHandler.Login)
			}
			r.Get(handler.RouteLogout, authHandler.Logout)
			r.Post(handler.RouteLogout, authHandler.Logout)
		})

		r.Route(handler.RouteAdmin, func(r chi.Router) {
			r.Use(middleware.RequireAuth(d.Sessions, d.Flash))

			r.Get(handler.RouteRoot, func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, handler.RouteAdmin+handler.RouteDashboard, http.StatusSeeOther)
			})
			r.Get(handler.RouteDashboard, dashboardHandler.Dashboard)

			registerLetters(r, handler.RouteSuratMasuk, letterRoutes{
				List: masukHandler.List, NewForm: masukHandler.NewForm, Create: masukHandler.Create,
				EditForm: masukHandler.EditForm, Update: masukHandler.Update,
				ConfirmDelete: masukHandler.ConfirmDelete, Delete: masukHandler.Delete,
			})
			registerLetters(r, handler.RouteSuratKeluar, letterRoutes{
				List: keluarHandler.List, NewForm: keluarHandler.NewForm, Create: keluarHandler.Create,
				EditForm: keluarHandler.EditForm, Update: keluarHandler.Update,
				ConfirmDelete: keluarHandler.ConfirmDelete, Delete: keluarHandler.Delete,
			})
		})
	})

	r.NotFound(withSession(pagesHandler.NotFound).ServeHTTP)

	return r, nil
}
