// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package legacy imports the users, letters and activity trail of the
// previous MySQL-backed SuratKu installation into the SQLite store.
package legacy

import (
	"context"
	"time"
)

// User is a row of the legacy users table. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsApproved   bool
	CreatedAt    time.Time
}

// SuratMasuk is a row of the legacy surat_masuk table.
type SuratMasuk struct {
	ID           int64
	NomorSurat   string
	TanggalSurat string
	TglTerima    string
	Pengirim     string
	Perihal      string
	CreatedAt    time.Time
}

// SuratKeluar is a row of the legacy surat_keluar table.
type SuratKeluar struct {
	ID           int64
	NomorSurat   string
	TanggalSurat string
	Tujuan       string
	Perihal      string
	CreatedAt    time.Time
}

// ActivityLog is a row of the legacy activity_logs table.
type ActivityLog struct {
	ID        int64
	UserID    int64
	Activity  string
	CreatedAt time.Time
}

// Source reads every row of the legacy tables.
type Source interface {
	Users(ctx context.Context) ([]User, error)
	SuratMasuk(ctx context.Context) ([]SuratMasuk, error)
	SuratKeluar(ctx context.Context) ([]SuratKeluar, error)
	ActivityLogs(ctx context.Context) ([]ActivityLog, error)
}
