// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/suratku/internal/auth"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "suratku-test.db")

	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

func TestDSN(t *testing.T) {
	got := dsn("/tmp/a.db")
	if !strings.HasPrefix(got, "/tmp/a.db?_time_format=sqlite") {
		t.Errorf("dsn = %q", got)
	}
	if !strings.Contains(got, "&_pragma=busy_timeout(5000)") {
		t.Errorf("dsn %q missing busy_timeout", got)
	}

	got = dsn("file:x.db?mode=rwc")
	if !strings.HasPrefix(got, "file:x.db?mode=rwc&_time_format=sqlite") {
		t.Errorf("dsn = %q", got)
	}
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "test@example.com",
		PasswordHash: "hashed-password",
		Name:         "Test User",
		Role:         "staff",
		IsApproved:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "test@example.com")
	}
	if !user.IsApproved {
		t.Error("IsApproved should be true")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC()
	params := CreateUserParams{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Name:         "Dup",
		Role:         "staff",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := q.CreateUser(ctx, params); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := q.CreateUser(ctx, params); err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}

func TestGetUserByEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC()
	created, err := q.CreateUser(ctx, CreateUserParams{
		Email:        "find@example.com",
		PasswordHash: "hash",
		Name:         "Find Me",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	found, err := q.GetUserByEmail(ctx, "find@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}

	byID, err := q.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if byID.Name != "Find Me" {
		t.Errorf("Name = %q, want %q", byID.Name, "Find Me")
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).GetUserByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestUpdateUserPassword(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now().UTC()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email: "pw@example.com", PasswordHash: "old", Name: "Pw", Role: "staff",
		CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if err := q.UpdateUserPassword(ctx, UpdateUserPasswordParams{
		PasswordHash: "new", UpdatedAt: now.Add(time.Minute), ID: user.ID,
	}); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}

	got, err := q.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if got.PasswordHash != "new" {
		t.Errorf("PasswordHash = %q, want new", got.PasswordHash)
	}
}

func TestSuratMasukCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	id, err := q.CreateSuratMasuk(ctx, CreateSuratMasukParams{
		NomorSurat:   "001/IN/2024",
		TanggalSurat: "2024-01-02",
		TglTerima:    "2024-01-03",
		Pengirim:     "Dinas Pendidikan",
		Perihal:      "Undangan rapat",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateSuratMasuk: %v", err)
	}

	got, err := q.GetSuratMasuk(ctx, id)
	if err != nil {
		t.Fatalf("GetSuratMasuk: %v", err)
	}
	if got.NomorSurat != "001/IN/2024" || got.TglTerima != "2024-01-03" || got.Pengirim != "Dinas Pendidikan" {
		t.Errorf("unexpected row: %+v", got)
	}

	n, err := q.UpdateSuratMasuk(ctx, UpdateSuratMasukParams{
		NomorSurat:   "002/IN/2024",
		TanggalSurat: "2024-01-02",
		TglTerima:    "2024-01-04",
		Pengirim:     "Dinas Kesehatan",
		Perihal:      "Undangan",
		UpdatedAt:    now,
		ID:           id,
	})
	if err != nil {
		t.Fatalf("UpdateSuratMasuk: %v", err)
	}
	if n != 1 {
		t.Errorf("rows affected = %d, want 1", n)
	}

	n, err = q.UpdateSuratMasuk(ctx, UpdateSuratMasukParams{ID: id + 100, UpdatedAt: now})
	if err != nil {
		t.Fatalf("UpdateSuratMasuk missing: %v", err)
	}
	if n != 0 {
		t.Errorf("rows affected for missing id = %d, want 0", n)
	}

	if err := q.DeleteSuratMasuk(ctx, id); err != nil {
		t.Fatalf("DeleteSuratMasuk: %v", err)
	}
	if _, err := q.GetSuratMasuk(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}

	// Deleting a missing row is not an error.
	if err := q.DeleteSuratMasuk(ctx, 4242); err != nil {
		t.Errorf("DeleteSuratMasuk missing: %v", err)
	}
}

func TestListSuratMasuk_Order(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	for _, tc := range []struct{ nomor, terima string }{
		{"A", "2024-01-01"},
		{"B", "2024-03-01"},
		{"C", "2024-02-01"},
		{"D", "2024-03-01"},
	} {
		if _, err := q.CreateSuratMasuk(ctx, CreateSuratMasukParams{
			NomorSurat: tc.nomor, TanggalSurat: "2024-01-01", TglTerima: tc.terima,
			Pengirim: "x", Perihal: "y", CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			t.Fatalf("CreateSuratMasuk: %v", err)
		}
	}

	items, err := q.ListSuratMasuk(ctx)
	if err != nil {
		t.Fatalf("ListSuratMasuk: %v", err)
	}

	var got []string
	for _, it := range items {
		got = append(got, it.NomorSurat)
	}
	want := "D,B,C,A"
	if strings.Join(got, ",") != want {
		t.Errorf("order = %v, want %s", got, want)
	}

	count, err := q.CountSuratMasuk(ctx)
	if err != nil {
		t.Fatalf("CountSuratMasuk: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
}

func TestSuratKeluarCRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	first, err := q.CreateSuratKeluar(ctx, CreateSuratKeluarParams{
		NomorSurat: "OUT-1", TanggalSurat: "2024-05-01", Tujuan: "Bupati",
		Perihal: "Laporan", CreatedAt: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateSuratKeluar: %v", err)
	}
	if _, err := q.CreateSuratKeluar(ctx, CreateSuratKeluarParams{
		NomorSurat: "OUT-2", TanggalSurat: "2024-06-01", Tujuan: "Camat",
		Perihal: "Permohonan", CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("CreateSuratKeluar: %v", err)
	}

	items, err := q.ListSuratKeluar(ctx)
	if err != nil {
		t.Fatalf("ListSuratKeluar: %v", err)
	}
	if len(items) != 2 || items[0].NomorSurat != "OUT-2" {
		t.Errorf("unexpected list order: %+v", items)
	}

	n, err := q.UpdateSuratKeluar(ctx, UpdateSuratKeluarParams{
		NomorSurat: "OUT-1b", TanggalSurat: "2024-05-01", Tujuan: "Bupati",
		Perihal: "Laporan akhir", UpdatedAt: now, ID: first,
	})
	if err != nil || n != 1 {
		t.Fatalf("UpdateSuratKeluar: n=%d err=%v", n, err)
	}

	got, err := q.GetSuratKeluar(ctx, first)
	if err != nil {
		t.Fatalf("GetSuratKeluar: %v", err)
	}
	if got.Perihal != "Laporan akhir" {
		t.Errorf("Perihal = %q", got.Perihal)
	}

	if err := q.DeleteSuratKeluar(ctx, first); err != nil {
		t.Fatalf("DeleteSuratKeluar: %v", err)
	}
	count, err := q.CountSuratKeluar(ctx)
	if err != nil {
		t.Fatalf("CountSuratKeluar: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestListRecentActivityLogsByUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		if _, err := q.CreateActivityLog(ctx, CreateActivityLogParams{
			UserID:    1,
			Activity:  "act-" + string(rune('a'+i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("CreateActivityLog: %v", err)
		}
	}
	if _, err := q.CreateActivityLog(ctx, CreateActivityLogParams{
		UserID: 2, Activity: "other", CreatedAt: base.Add(time.Hour),
	}); err != nil {
		t.Fatalf("CreateActivityLog: %v", err)
	}

	logs, err := q.ListRecentActivityLogsByUser(ctx, ListRecentActivityLogsByUserParams{UserID: 1, Limit: 5})
	if err != nil {
		t.Fatalf("ListRecentActivityLogsByUser: %v", err)
	}
	if len(logs) != 5 {
		t.Fatalf("len = %d, want 5", len(logs))
	}
	if logs[0].Activity != "act-g" || logs[4].Activity != "act-c" {
		t.Errorf("unexpected order: first=%q last=%q", logs[0].Activity, logs[4].Activity)
	}
	for _, l := range logs {
		if l.UserID != 1 {
			t.Errorf("got entry of user %d", l.UserID)
		}
	}
	if !logs[0].CreatedAt.Equal(base.Add(6 * time.Minute)) {
		t.Errorf("CreatedAt = %v, want %v", logs[0].CreatedAt, base.Add(6*time.Minute))
	}
}

func TestDeleteOldEvents(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	for _, age := range []time.Duration{0, 24 * time.Hour, 100 * 24 * time.Hour} {
		if _, err := q.CreateEvent(ctx, CreateEventParams{
			Level: "info", Category: "auth", Message: "m", Metadata: "{}",
			CreatedAt: now.Add(-age),
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	n, err := q.DeleteOldEvents(ctx, now.Add(-90*24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteOldEvents: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	events, err := q.ListEventsByCategory(ctx, ListEventsByCategoryParams{Category: "auth", Limit: 10})
	if err != nil {
		t.Fatalf("ListEventsByCategory: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("remaining = %d, want 2", len(events))
	}
}

func TestImportIsIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)
	now := time.Now().UTC()

	params := ImportSuratMasukParams{
		ID: 42, NomorSurat: "LEG-42", TanggalSurat: "2020-01-01", TglTerima: "2020-01-02",
		Pengirim: "Lama", Perihal: "Arsip", CreatedAt: now, UpdatedAt: now,
	}
	n, err := q.ImportSuratMasuk(ctx, params)
	if err != nil || n != 1 {
		t.Fatalf("ImportSuratMasuk: n=%d err=%v", n, err)
	}
	n, err = q.ImportSuratMasuk(ctx, params)
	if err != nil || n != 0 {
		t.Fatalf("second ImportSuratMasuk: n=%d err=%v", n, err)
	}

	got, err := q.GetSuratMasuk(ctx, 42)
	if err != nil {
		t.Fatalf("GetSuratMasuk: %v", err)
	}
	if got.NomorSurat != "LEG-42" {
		t.Errorf("NomorSurat = %q", got.NomorSurat)
	}
}

func TestSeed(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	admin, err := q.GetUserByEmail(ctx, DefaultAdminEmail)
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if admin.Role != DefaultAdminRole {
		t.Errorf("Role = %q, want %q", admin.Role, DefaultAdminRole)
	}
	if !admin.IsApproved {
		t.Error("seeded admin should be approved")
	}
	ok, err := auth.CheckPassword(DefaultAdminPassword, admin.PasswordHash)
	if err != nil || !ok {
		t.Errorf("CheckPassword(default) = %v, %v", ok, err)
	}

	// Second seed should skip (no error, no duplicate)
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Second Seed: %v", err)
	}

	count, err := q.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (seed should skip if exists)", count)
	}
}
