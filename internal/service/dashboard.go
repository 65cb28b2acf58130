// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/store"
)

// RecentActivityLimit is the number of activity entries shown on the dashboard.
const RecentActivityLimit = 5

// ActivityItem is an activity entry with its relative time label.
type ActivityItem struct {
	Activity  string
	CreatedAt time.Time
	TimeAgo   string
}

// Dashboard is the aggregated landing view of a signed-in user.
type Dashboard struct {
	TotalSuratMasuk  int64
	TotalSuratKeluar int64
	TotalArsip       int64
	Activities       []ActivityItem
}

// DashboardService composes the dashboard from the letter and activity tables.
type DashboardService struct {
	queries *store.Queries
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *sql.DB) *DashboardService {
	return &DashboardService{queries: store.New(db)}
}

// Load returns the counts of both letter tables and the most recent
// activity of userID. Any failed read fails the whole dashboard.
func (s *DashboardService) Load(ctx context.Context, userID int64, lang string, now time.Time) (Dashboard, error) {
	masuk, err := s.queries.CountSuratMasuk(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("counting surat masuk: %w", err)
	}

	keluar, err := s.queries.CountSuratKeluar(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("counting surat keluar: %w", err)
	}

	logs, err := s.queries.ListRecentActivityLogsByUser(ctx, store.ListRecentActivityLogsByUserParams{
		UserID: userID,
		Limit:  RecentActivityLimit,
	})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing activity of user %d: %w", userID, err)
	}

	items := make([]ActivityItem, 0, len(logs))
	for _, l := range logs {
		items = append(items, ActivityItem{
			Activity:  l.Activity,
			CreatedAt: l.CreatedAt,
			TimeAgo:   TimeAgo(lang, l.CreatedAt, now),
		})
	}

	return Dashboard{
		TotalSuratMasuk:  masuk,
		TotalSuratKeluar: keluar,
		TotalArsip:       masuk + keluar,
		Activities:       items,
	}, nil
}

// TimeAgo labels then relative to now using whole minutes, hours and days.
func TimeAgo(lang string, then, now time.Time) string {
	mins := int(now.Sub(then) / time.Minute)
	hours := mins / 60
	days := hours / 24

	switch {
	case mins < 1:
		return i18n.T(lang, "time.just_now")
	case mins < 60:
		return i18n.T(lang, "time.minutes_ago", mins)
	case hours < 24:
		return i18n.T(lang, "time.hours_ago", hours)
	case days == 1:
		return i18n.T(lang, "time.yesterday")
	default:
		return i18n.T(lang, "time.days_ago", days)
	}
}
