// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Reader reads the legacy tables from a MySQL database.
type Reader struct {
	db *sql.DB
}

// readerDSN forces time parsing in UTC so DATE and DATETIME columns scan
// into time.Time regardless of the DSN the operator passed.
func readerDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parsing DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// NewReader opens the legacy database and checks the connection.
func NewReader(dsn string) (*Reader, error) {
	normalized, err := readerDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Reader{db: db}, nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	return r.db.Close()
}

// Users retrieves all users.
func (r *Reader) Users(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, password, name, COALESCE(role, ''), is_approved, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []User
	for rows.Next() {
		var u User
		var createdAt sql.NullTime
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.IsApproved, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.CreatedAt = createdAt.Time
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// SuratMasuk retrieves all incoming letters.
func (r *Reader) SuratMasuk(ctx context.Context) ([]SuratMasuk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nomor_surat, tanggal_surat, tgl_terima, pengirim, perihal FROM surat_masuk ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query surat_masuk: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SuratMasuk
	for rows.Next() {
		var s SuratMasuk
		if err := rows.Scan(&s.ID, &s.NomorSurat, &s.TanggalSurat, &s.TglTerima, &s.Pengirim, &s.Perihal); err != nil {
			return nil, fmt.Errorf("failed to scan surat_masuk: %w", err)
		}
		s.TanggalSurat = normalizeDate(s.TanggalSurat)
		s.TglTerima = normalizeDate(s.TglTerima)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating surat_masuk: %w", err)
	}
	return out, nil
}

// SuratKeluar retrieves all outgoing letters.
func (r *Reader) SuratKeluar(ctx context.Context) ([]SuratKeluar, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nomor_surat, tanggal_surat, tujuan, perihal FROM surat_keluar ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query surat_keluar: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SuratKeluar
	for rows.Next() {
		var s SuratKeluar
		if err := rows.Scan(&s.ID, &s.NomorSurat, &s.TanggalSurat, &s.Tujuan, &s.Perihal); err != nil {
			return nil, fmt.Errorf("failed to scan surat_keluar: %w", err)
		}
		s.TanggalSurat = normalizeDate(s.TanggalSurat)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating surat_keluar: %w", err)
	}
	return out, nil
}

// ActivityLogs retrieves the whole activity trail.
func (r *Reader) ActivityLogs(ctx context.Context) ([]ActivityLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, activity, created_at FROM activity_logs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity_logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []ActivityLog
	for rows.Next() {
		var a ActivityLog
		var createdAt sql.NullTime
		if err := rows.Scan(&a.ID, &a.UserID, &a.Activity, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity_logs: %w", err)
		}
		a.CreatedAt = createdAt.Time
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity_logs: %w", err)
	}
	return out, nil
}

// normalizeDate reduces a scanned DATE value to YYYY-MM-DD. DATE columns
// arrive as RFC 3339 text once converted from time.Time.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[:10]
	}
	return s
}
