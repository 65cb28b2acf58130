// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the scs session manager and stores the
// authenticated identity in it.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// CookieName is the name of the session cookie.
const CookieName = "suratku_session"

// Session keys holding the authenticated identity.
const (
	KeyUserID   = "user_id"
	KeyUserName = "user_name"
	KeyUserRole = "user_role"
)

// Identity is the authenticated user as recorded in the session.
// Role is display data only; nothing is gated on it.
type Identity struct {
	UserID int64
	Name   string
	Role   string
}

// IsAuthenticated reports whether the identity carries a user id.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}

// New creates a new session manager configured with SQLite store.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	configure(sm, isDev)
	return sm
}

// NewMemory creates a session manager backed by the in-process memory store.
func NewMemory(isDev bool) *scs.SessionManager {
	sm := scs.New()
	configure(sm, isDev)
	return sm
}

func configure(sm *scs.SessionManager, isDev bool) {
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.Name = CookieName
	sm.Cookie.Path = "/"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev // Secure cookies in production only
}

// StopCleanup stops the background expiry sweep of the SQLite store, if any.
func StopCleanup(sm *scs.SessionManager) {
	if s, ok := sm.Store.(*sqlite3store.SQLite3Store); ok {
		s.StopCleanup()
	}
}

// Login renews the session token and records the identity.
// The token is renewed first to prevent session fixation.
func Login(ctx context.Context, sm *scs.SessionManager, id Identity) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, KeyUserID, id.UserID)
	sm.Put(ctx, KeyUserName, id.Name)
	sm.Put(ctx, KeyUserRole, id.Role)
	return nil
}

// Current returns the identity stored in the session.
// The zero Identity is returned for anonymous sessions.
func Current(ctx context.Context, sm *scs.SessionManager) Identity {
	return Identity{
		UserID: sm.GetInt64(ctx, KeyUserID),
		Name:   sm.GetString(ctx, KeyUserName),
		Role:   sm.GetString(ctx, KeyUserRole),
	}
}

// Logout destroys the session unconditionally.
func Logout(ctx context.Context, sm *scs.SessionManager) error {
	return sm.Destroy(ctx)
}
