// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package legacy

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/suratku/internal/model"
	"github.com/olegiv/suratku/internal/store"
)

// Count reports how many rows of a table were read and how many were new.
type Count struct {
	Read     int
	Imported int64
}

// Skipped returns the number of rows whose id already existed.
func (c Count) Skipped() int64 {
	return int64(c.Read) - c.Imported
}

// Result holds the per-table counts of an import.
type Result struct {
	Users        Count
	SuratMasuk   Count
	SuratKeluar  Count
	ActivityLogs Count
}

// Importer copies legacy rows into the SQLite store.
type Importer struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewImporter creates an Importer writing to db.
func NewImporter(db *sql.DB, logger *slog.Logger) *Importer {
	return &Importer{db: db, logger: logger, now: time.Now}
}

// Import reads every legacy table and inserts the rows in one transaction.
// Ids are preserved; rows whose id already exists are skipped, so running
// the import twice is harmless.
func (im *Importer) Import(ctx context.Context, src Source) (Result, error) {
	var res Result

	users, err := src.Users(ctx)
	if err != nil {
		return res, err
	}
	masuk, err := src.SuratMasuk(ctx)
	if err != nil {
		return res, err
	}
	keluar, err := src.SuratKeluar(ctx)
	if err != nil {
		return res, err
	}
	logs, err := src.ActivityLogs(ctx)
	if err != nil {
		return res, err
	}

	tx, err := im.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := store.New(im.db).WithTx(tx)
	now := im.now().UTC()
	stamp := func(t time.Time) time.Time {
		if t.IsZero() {
			return now
		}
		return t.UTC()
	}

	res.Users.Read = len(users)
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = model.RoleStaff
		}
		n, err := q.ImportUser(ctx, store.ImportUserParams{
			ID:           u.ID,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Role:         role,
			IsApproved:   u.IsApproved,
			CreatedAt:    stamp(u.CreatedAt),
			UpdatedAt:    now,
		})
		if err != nil {
			return res, fmt.Errorf("importing user %d: %w", u.ID, err)
		}
		res.Users.Imported += n
	}

	res.SuratMasuk.Read = len(masuk)
	for _, s := range masuk {
		n, err := q.ImportSuratMasuk(ctx, store.ImportSuratMasukParams{
			ID:           s.ID,
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			TglTerima:    s.TglTerima,
			Pengirim:     s.Pengirim,
			Perihal:      s.Perihal,
			CreatedAt:    stamp(s.CreatedAt),
			UpdatedAt:    now,
		})
		if err != nil {
			return res, fmt.Errorf("importing surat masuk %d: %w", s.ID, err)
		}
		res.SuratMasuk.Imported += n
	}

	res.SuratKeluar.Read = len(keluar)
	for _, s := range keluar {
		n, err := q.ImportSuratKeluar(ctx, store.ImportSuratKeluarParams{
			ID:           s.ID,
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			Tujuan:       s.Tujuan,
			Perihal:      s.Perihal,
			CreatedAt:    stamp(s.CreatedAt),
			UpdatedAt:    now,
		})
		if err != nil {
			return res, fmt.Errorf("importing surat keluar %d: %w", s.ID, err)
		}
		res.SuratKeluar.Imported += n
	}

	res.ActivityLogs.Read = len(logs)
	for _, a := range logs {
		n, err := q.ImportActivityLog(ctx, store.ImportActivityLogParams{
			ID:        a.ID,
			UserID:    a.UserID,
			Activity:  a.Activity,
			CreatedAt: stamp(a.CreatedAt),
		})
		if err != nil {
			return res, fmt.Errorf("importing activity log %d: %w", a.ID, err)
		}
		res.ActivityLogs.Imported += n
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("committing import: %w", err)
	}

	im.logger.Info("legacy import finished",
		"category", model.EventCategoryImport,
		"users", res.Users.Imported,
		"surat_masuk", res.SuratMasuk.Imported,
		"surat_keluar", res.SuratKeluar.Imported,
		"activity_logs", res.ActivityLogs.Imported,
	)
	return res, nil
}
