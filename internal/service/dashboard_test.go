// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/suratku/internal/store"
	"github.com/olegiv/suratku/internal/testutil"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		lang string
		want string
	}{
		{"seconds", 30 * time.Second, "id", "Baru saja"},
		{"future", -time.Minute, "id", "Baru saja"},
		{"one minute", time.Minute, "id", "1 menit lalu"},
		{"59 minutes", 59 * time.Minute, "id", "59 menit lalu"},
		{"one hour", time.Hour, "id", "1 jam lalu"},
		{"23 hours", 23*time.Hour + 59*time.Minute, "id", "23 jam lalu"},
		{"one day", 24 * time.Hour, "id", "Kemarin"},
		{"almost two days", 47 * time.Hour, "id", "Kemarin"},
		{"two days", 48 * time.Hour, "id", "2 hari lalu"},
		{"english minutes", 5 * time.Minute, "en", "5 minutes ago"},
		{"english yesterday", 30 * time.Hour, "en", "Yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgo(tt.lang, now.Add(-tt.ago), now))
		})
	}
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	d, err := NewDashboardService(db).Load(context.Background(), 1, "id", time.Now())
	require.NoError(t, err)
	assert.Zero(t, d.TotalSuratMasuk)
	assert.Zero(t, d.TotalSuratKeluar)
	assert.Zero(t, d.TotalArsip)
	assert.Empty(t, d.Activities)
}

func TestDashboard_TotalsAndRecentActivity(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	masuk := NewCollection(db, SuratMasuk)
	keluar := NewCollection(db, SuratKeluar)

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	step := 0
	clock := func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
	masuk.now = clock
	keluar.now = clock

	for i := 0; i < 4; i++ {
		_, err := masuk.Create(ctx, 1, sampleMasuk(fmt.Sprintf("M-%d", i)))
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := keluar.Create(ctx, 1, store.SuratKeluar{
			NomorSurat: fmt.Sprintf("K-%d", i), TanggalSurat: "2024-06-01", Tujuan: "Camat", Perihal: "Surat",
		})
		require.NoError(t, err)
	}
	// Activity of another user never shows up.
	_, err := keluar.Create(ctx, 2, store.SuratKeluar{
		NomorSurat: "OTHER", TanggalSurat: "2024-06-01", Tujuan: "Camat", Perihal: "Surat",
	})
	require.NoError(t, err)

	now := base.Add(10 * time.Minute)
	d, err := NewDashboardService(db).Load(ctx, 1, "id", now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), d.TotalSuratMasuk)
	assert.Equal(t, int64(4), d.TotalSuratKeluar)
	assert.Equal(t, d.TotalSuratMasuk+d.TotalSuratKeluar, d.TotalArsip)

	require.Len(t, d.Activities, RecentActivityLimit)
	assert.Equal(t, "Mencatat surat keluar: K-2", d.Activities[0].Activity)
	assert.Equal(t, "3 menit lalu", d.Activities[0].TimeAgo)
	assert.Equal(t, "Mencatat surat masuk: M-2", d.Activities[4].Activity)
	for _, a := range d.Activities {
		assert.NotContains(t, a.Activity, "OTHER")
	}
}

func TestDashboard_StorageErrorFailsWhole(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	cleanup()

	_, err := NewDashboardService(db).Load(context.Background(), 1, "id", time.Now())
	assert.Error(t, err)
}
