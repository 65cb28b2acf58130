// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/suratku/internal/store"
)

// ErrNotFound is returned when a letter does not exist.
var ErrNotFound = errors.New("record not found")

// Kind describes how one letter table is read and written.
type Kind[T any] struct {
	// Label names the collection in activity entries, e.g. "surat masuk".
	Label string
	// Key returns the business key (nomor_surat) of a record.
	Key func(T) string

	list   func(ctx context.Context, q *store.Queries) ([]T, error)
	get    func(ctx context.Context, q *store.Queries, id int64) (T, error)
	insert func(ctx context.Context, q *store.Queries, rec T, now time.Time) (int64, error)
	update func(ctx context.Context, q *store.Queries, id int64, rec T, now time.Time) (int64, error)
	remove func(ctx context.Context, q *store.Queries, id int64) error
}

// Activity texts written to the audit trail.
const (
	activityCreate = "Mencatat %s: %s"
	activityUpdate = "Memperbarui %s: %s"
	activityDelete = "Menghapus %s: %s"
)

// Collection provides list/get/create/update/delete for one letter kind.
// Every mutation commits together with exactly one activity entry.
type Collection[T any] struct {
	db   *sql.DB
	kind Kind[T]
	now  func() time.Time
}

// NewCollection creates a Collection for kind.
func NewCollection[T any](db *sql.DB, kind Kind[T]) *Collection[T] {
	return &Collection[T]{db: db, kind: kind, now: time.Now}
}

// Label returns the collection label.
func (c *Collection[T]) Label() string {
	return c.kind.Label
}

// List returns every record in display order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	items, err := c.kind.list(ctx, store.New(c.db))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.kind.Label, err)
	}
	return items, nil
}

// Get returns the record with id, or ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := c.kind.get(ctx, store.New(c.db), id)
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s %d: %w", c.kind.Label, id, err)
	}
	return rec, nil
}

// Create inserts rec and records the action for actorID.
func (c *Collection[T]) Create(ctx context.Context, actorID int64, rec T) (int64, error) {
	var id int64
	err := c.inTx(ctx, func(q *store.Queries, now time.Time) error {
		var err error
		id, err = c.kind.insert(ctx, q, rec, now)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", c.kind.Label, err)
		}
		return c.audit(ctx, q, actorID, fmt.Sprintf(activityCreate, c.kind.Label, c.kind.Key(rec)), now)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the record with id. A missing id yields ErrNotFound and
// nothing is written.
func (c *Collection[T]) Update(ctx context.Context, actorID, id int64, rec T) error {
	return c.inTx(ctx, func(q *store.Queries, now time.Time) error {
		n, err := c.kind.update(ctx, q, id, rec, now)
		if err != nil {
			return fmt.Errorf("updating %s %d: %w", c.kind.Label, id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return c.audit(ctx, q, actorID, fmt.Sprintf(activityUpdate, c.kind.Label, c.kind.Key(rec)), now)
	})
}

// Delete removes the record with id and returns the label used in the
// activity entry. A record that no longer exists is not an error: the
// delete is a no-op and the entry is labelled "ID {id}".
func (c *Collection[T]) Delete(ctx context.Context, actorID, id int64) (string, error) {
	var label string
	err := c.inTx(ctx, func(q *store.Queries, now time.Time) error {
		rec, err := c.kind.get(ctx, q, id)
		switch {
		case err == nil:
			label = c.kind.Key(rec)
		case errors.Is(err, sql.ErrNoRows):
			label = fmt.Sprintf("ID %d", id)
		default:
			return fmt.Errorf("reading %s %d: %w", c.kind.Label, id, err)
		}

		if err := c.kind.remove(ctx, q, id); err != nil {
			return fmt.Errorf("deleting %s %d: %w", c.kind.Label, id, err)
		}
		return c.audit(ctx, q, actorID, fmt.Sprintf(activityDelete, c.kind.Label, label), now)
	})
	if err != nil {
		return "", err
	}
	return label, nil
}

func (c *Collection[T]) audit(ctx context.Context, q *store.Queries, actorID int64, activity string, now time.Time) error {
	if _, err := q.CreateActivityLog(ctx, store.CreateActivityLogParams{
		UserID:    actorID,
		Activity:  activity,
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}
	return nil
}

// inTx runs fn in a transaction that is rolled back unless fn succeeds.
func (c *Collection[T]) inTx(ctx context.Context, fn func(q *store.Queries, now time.Time) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(store.New(c.db).WithTx(tx), c.now().UTC()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// SuratMasuk is the incoming letter kind, listed by receipt date.
var SuratMasuk = Kind[store.SuratMasuk]{
	Label: "surat masuk",
	Key:   func(s store.SuratMasuk) string { return s.NomorSurat },
	list: func(ctx context.Context, q *store.Queries) ([]store.SuratMasuk, error) {
		return q.ListSuratMasuk(ctx)
	},
	get: func(ctx context.Context, q *store.Queries, id int64) (store.SuratMasuk, error) {
		return q.GetSuratMasuk(ctx, id)
	},
	insert: func(ctx context.Context, q *store.Queries, s store.SuratMasuk, now time.Time) (int64, error) {
		return q.CreateSuratMasuk(ctx, store.CreateSuratMasukParams{
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			TglTerima:    s.TglTerima,
			Pengirim:     s.Pengirim,
			Perihal:      s.Perihal,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	},
	update: func(ctx context.Context, q *store.Queries, id int64, s store.SuratMasuk, now time.Time) (int64, error) {
		return q.UpdateSuratMasuk(ctx, store.UpdateSuratMasukParams{
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			TglTerima:    s.TglTerima,
			Pengirim:     s.Pengirim,
			Perihal:      s.Perihal,
			UpdatedAt:    now,
			ID:           id,
		})
	},
	remove: func(ctx context.Context, q *store.Queries, id int64) error {
		return q.DeleteSuratMasuk(ctx, id)
	},
}

// SuratKeluar is the outgoing letter kind, listed by letter date.
var SuratKeluar = Kind[store.SuratKeluar]{
	Label: "surat keluar",
	Key:   func(s store.SuratKeluar) string { return s.NomorSurat },
	list: func(ctx context.Context, q *store.Queries) ([]store.SuratKeluar, error) {
		return q.ListSuratKeluar(ctx)
	},
	get: func(ctx context.Context, q *store.Queries, id int64) (store.SuratKeluar, error) {
		return q.GetSuratKeluar(ctx, id)
	},
	insert: func(ctx context.Context, q *store.Queries, s store.SuratKeluar, now time.Time) (int64, error) {
		return q.CreateSuratKeluar(ctx, store.CreateSuratKeluarParams{
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			Tujuan:       s.Tujuan,
			Perihal:      s.Perihal,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	},
	update: func(ctx context.Context, q *store.Queries, id int64, s store.SuratKeluar, now time.Time) (int64, error) {
		return q.UpdateSuratKeluar(ctx, store.UpdateSuratKeluarParams{
			NomorSurat:   s.NomorSurat,
			TanggalSurat: s.TanggalSurat,
			Tujuan:       s.Tujuan,
			Perihal:      s.Perihal,
			UpdatedAt:    now,
			ID:           id,
		})
	},
	remove: func(ctx context.Context, q *store.Queries, id int64) error {
		return q.DeleteSuratKeluar(ctx, id)
	},
}
